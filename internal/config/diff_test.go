package config_test

import (
	"strings"
	"testing"

	"applauncher/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func linesWithPrefix(text, prefix string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix) {
			out = append(out, strings.TrimSpace(strings.TrimPrefix(line, prefix)))
		}
	}
	return out
}

func TestDiff(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		diff, err := config.Diff(config.New(), config.New())
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("changed values", func(t *testing.T) {
		cfg := config.New()
		cfg.Launch.Shell = "/bin/dash"
		cfg.Debug = true

		diff, err := config.Diff(config.New(), cfg)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"shell: /bin/dash", "debug: true"}, linesWithPrefix(diff, "+ "))
		assert.ElementsMatch(t, []string{"shell: /bin/sh", "debug: false"}, linesWithPrefix(diff, "- "))
		assert.Contains(t, linesWithPrefix(diff, "  "), "launch:")
		assert.True(t, strings.HasSuffix(diff, "\n"))
	})

	t.Run("lines come from the encodings", func(t *testing.T) {
		cfg := config.New()
		cfg.Directories.System = "/opt/apps"

		from, err := yaml.Marshal(config.New())
		require.NoError(t, err)
		to, err := yaml.Marshal(cfg)
		require.NoError(t, err)

		diff, err := config.Diff(config.New(), cfg)
		require.NoError(t, err)
		for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
			require.GreaterOrEqual(t, len(line), 2)
			body := line[2:] + "\n"
			switch line[:2] {
			case "- ":
				assert.Contains(t, string(from), body)
			case "+ ":
				assert.Contains(t, string(to), body)
			default:
				assert.Contains(t, string(from), body)
				assert.Contains(t, string(to), body)
			}
		}
		assert.Equal(t, strings.Count(string(from), "\n"), strings.Count(diff, "\n")-1)
	})
}
