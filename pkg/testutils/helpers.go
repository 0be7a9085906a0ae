package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// Descriptor renders a minimal [Desktop Entry] section. Empty values are left
// out so tests can produce incomplete descriptors.
func Descriptor(name, exec string, extra ...string) string {
	var sb strings.Builder
	sb.WriteString("[Desktop Entry]\nType=Application\n")
	if name != "" {
		fmt.Fprintf(&sb, "Name=%s\n", name)
	}
	if exec != "" {
		fmt.Fprintf(&sb, "Exec=%s\n", exec)
	}
	for _, line := range extra {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteDescriptor writes a descriptor file into dir and returns its path.
func WriteDescriptor(t *testing.T, dir, file, name, exec string, extra ...string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(Descriptor(name, exec, extra...)), 0644))
	return path
}

// CreateDefaultApplications populates dir with the Firefox/Terminal pair used
// by the end-to-end tests.
func CreateDefaultApplications(t *testing.T, dir string) {
	t.Helper()
	WriteDescriptor(t, dir, "a.desktop", "Firefox", "firefox")
	WriteDescriptor(t, dir, "b.desktop", "Terminal", "xterm")
}
