package desktop_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"applauncher/internal/desktop"
	"applauncher/internal/errors"
	"applauncher/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanner(t *testing.T) *desktop.Scanner {
	t.Helper()
	s, err := desktop.NewScanner(desktop.DefaultPattern)
	require.NoError(t, err)
	return s
}

func TestNewScanner(t *testing.T) {
	s, err := desktop.NewScanner("")
	require.NoError(t, err)
	assert.Equal(t, desktop.DefaultPattern, s.Pattern())

	_, err = desktop.NewScanner("[a-")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestScanFiltersByPattern(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"a.desktop":      "",
		"b.desktop":      "",
		"readme.txt":     "",
		"desktop":        "",
		"c.desktop.bak":  "",
		"mimeinfo.cache": "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.desktop"), 0755))
	testutils.WriteDescriptor(t, filepath.Join(dir, "sub.desktop"), "nested.desktop", "Nested", "nested")

	paths := newScanner(t).Scan([]string{dir})
	sort.Strings(paths)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.desktop"),
		filepath.Join(dir, "b.desktop"),
	}, paths)
}

func TestScanDirectoryOrder(t *testing.T) {
	system := t.TempDir()
	user := t.TempDir()
	testutils.WriteDescriptor(t, system, "sys.desktop", "Sys", "sys")
	testutils.WriteDescriptor(t, user, "usr.desktop", "Usr", "usr")

	paths := newScanner(t).Scan([]string{system, user})
	assert.Equal(t, []string{
		filepath.Join(system, "sys.desktop"),
		filepath.Join(user, "usr.desktop"),
	}, paths)
}

func TestScanSkipsBadDirectories(t *testing.T) {
	good := t.TempDir()
	testutils.WriteDescriptor(t, good, "ok.desktop", "OK", "ok")

	notADir := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(notADir, nil, 0644))

	paths := newScanner(t).Scan([]string{
		filepath.Join(t.TempDir(), "missing"),
		notADir,
		good,
	})
	assert.Equal(t, []string{filepath.Join(good, "ok.desktop")}, paths)
}

func TestScanUnreadableDirectory(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("Skipping test when running as root")
	}

	locked := t.TempDir()
	testutils.WriteDescriptor(t, locked, "hidden.desktop", "Hidden", "hidden")
	require.NoError(t, os.Chmod(locked, 0000))
	defer os.Chmod(locked, 0755)

	good := t.TempDir()
	testutils.WriteDescriptor(t, good, "ok.desktop", "OK", "ok")

	paths := newScanner(t).Scan([]string{locked, good})
	assert.Equal(t, []string{filepath.Join(good, "ok.desktop")}, paths)
}

func TestScanSkipsBrokenEntries(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteDescriptor(t, dir, "ok.desktop", "OK", "ok")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling.desktop")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad\xff.desktop"), nil, 0644))

	paths := newScanner(t).Scan([]string{dir})
	assert.Equal(t, []string{filepath.Join(dir, "ok.desktop")}, paths)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("both fields", func(t *testing.T) {
		path := testutils.WriteDescriptor(t, dir, "ff.desktop", "Firefox", "firefox %u",
			"Icon=firefox", "Categories=Network;WebBrowser;")
		entry, err := desktop.Load(path)
		require.NoError(t, err)
		assert.Equal(t, desktop.Entry{Name: "Firefox", Exec: "firefox %u", Path: path}, entry)
	})

	t.Run("exec kept verbatim", func(t *testing.T) {
		exec := `sh -c "echo hi; sleep 1" # not a comment \`
		path := testutils.WriteDescriptor(t, dir, "verbatim.desktop", "Verbatim", exec)
		entry, err := desktop.Load(path)
		require.NoError(t, err)
		assert.Equal(t, exec, entry.Exec)
	})

	t.Run("quoted exec keeps quotes", func(t *testing.T) {
		path := testutils.WriteDescriptor(t, dir, "quoted.desktop", "Quoted", `"/opt/my app/run"`)
		entry, err := desktop.Load(path)
		require.NoError(t, err)
		assert.Equal(t, `"/opt/my app/run"`, entry.Exec)
	})

	t.Run("exec opening with a backtick", func(t *testing.T) {
		exec := "`which foot` -e top"
		path := testutils.WriteDescriptor(t, dir, "backtick.desktop", "Foot", exec)
		entry, err := desktop.Load(path)
		require.NoError(t, err)
		assert.Equal(t, exec, entry.Exec)
	})

	t.Run("exec opening with a triple quote", func(t *testing.T) {
		exec := `"""weird`
		path := testutils.WriteDescriptor(t, dir, "triple.desktop", "Weird", exec)
		entry, err := desktop.Load(path)
		require.NoError(t, err)
		assert.Equal(t, exec, entry.Exec)
		assert.Equal(t, "Weird", entry.Name)
	})

	t.Run("unclosed backtick does not swallow later keys", func(t *testing.T) {
		content := "[Desktop Entry]\n" +
			"Comment=`unterminated\n" +
			"Name=`Top` monitor\n" +
			"Exec=top\n"
		path := filepath.Join(dir, "swallow.desktop")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		entry, err := desktop.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "`Top` monitor", entry.Name)
		assert.Equal(t, "top", entry.Exec)
	})

	t.Run("later plain value wins", func(t *testing.T) {
		content := "[Desktop Entry]\nName=App\nExec=`old`\nExec=new\n"
		path := filepath.Join(dir, "dup.desktop")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		entry, err := desktop.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "new", entry.Exec)
	})

	t.Run("backtick in another section", func(t *testing.T) {
		content := "[Desktop Entry]\nName=App\nExec=app\n\n[Desktop Action x]\nExec=`other`\n"
		path := filepath.Join(dir, "action.desktop")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		entry, err := desktop.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "app", entry.Exec)
	})

	t.Run("ignores other sections and locale keys", func(t *testing.T) {
		content := "# comment\n" +
			"[Desktop Entry]\n" +
			"Name[de]=Datei\n" +
			"Name=Files\n" +
			"Exec=nautilus --new-window\n" +
			"\n" +
			"[Desktop Action new-window]\n" +
			"Name=New Window\n" +
			"Exec=nautilus --other\n"
		path := filepath.Join(dir, "files.desktop")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		entry, err := desktop.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Files", entry.Name)
		assert.Equal(t, "nautilus --new-window", entry.Exec)
	})

	t.Run("missing exec", func(t *testing.T) {
		path := testutils.WriteDescriptor(t, dir, "noexec.desktop", "NoExec", "")
		_, err := desktop.Load(path)
		require.Error(t, err)
		var de *errors.DescriptorError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, desktop.KeyExec, de.Field())
	})

	t.Run("missing name", func(t *testing.T) {
		path := testutils.WriteDescriptor(t, dir, "noname.desktop", "", "run")
		_, err := desktop.Load(path)
		require.Error(t, err)
		var de *errors.DescriptorError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, desktop.KeyName, de.Field())
	})

	t.Run("fields outside main section", func(t *testing.T) {
		path := filepath.Join(dir, "wrongsection.desktop")
		require.NoError(t, os.WriteFile(path, []byte("[Other]\nName=X\nExec=x\n"), 0644))
		_, err := desktop.Load(path)
		assert.True(t, errors.IsMissingField(err))
	})

	t.Run("unparsable", func(t *testing.T) {
		path := filepath.Join(dir, "broken.desktop")
		require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry\nName=X\nExec=x\n"), 0644))
		_, err := desktop.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsParseFailed(err))
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := desktop.Load(filepath.Join(dir, "absent.desktop"))
		assert.True(t, errors.IsParseFailed(err))
	})
}
