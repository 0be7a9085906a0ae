package desktop

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"applauncher/internal/errors"
	"applauncher/internal/log"

	"github.com/gobwas/glob"
)

// DefaultPattern matches freedesktop descriptor files.
const DefaultPattern = "*.desktop"

// Scanner lists descriptor files in a fixed set of directories.
type Scanner struct {
	pattern string
	match   glob.Glob
}

// NewScanner compiles the file name pattern used to recognise descriptors.
func NewScanner(pattern string) (*Scanner, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.NewConfigError("invalid scan pattern", pattern, errors.InvalidConfig, err)
	}
	return &Scanner{pattern: pattern, match: g}, nil
}

// Pattern returns the file name pattern.
func (s *Scanner) Pattern() string {
	return s.pattern
}

// Scan returns matching descriptor paths from each directory in order. It is
// not recursive. Unreadable directories and entries are logged and skipped.
func (s *Scanner) Scan(dirs []string) []string {
	var paths []string
	for _, dir := range dirs {
		paths = append(paths, s.scanDir(dir)...)
	}
	return paths
}

func (s *Scanner) scanDir(dir string) []string {
	f, err := os.Open(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Directory %s does not exist, skipping", dir)
			return nil
		}
		log.LogWithError(errors.NewFileError("cannot open directory", dir, errors.DirectoryUnreadable, err)).
			Warn("Skipping directory")
		return nil
	}
	defer f.Close()

	// Readdirnames avoids a per-entry lstat, so a single bad entry fails only
	// its own Stat below.
	names, err := f.Readdirnames(-1)
	if err != nil {
		log.LogWithError(errors.NewFileError("cannot list directory", dir, errors.DirectoryUnreadable, err)).
			Warn("Directory listing incomplete")
	}

	var paths []string
	for _, name := range names {
		if !utf8.ValidString(name) {
			log.LogWithError(errors.NewFileError("file name is not valid UTF-8", filepath.Join(dir, name), errors.InvalidFileName, nil)).
				Warn("Skipping entry")
			continue
		}
		if !s.match.Match(name) {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			log.LogWithError(errors.NewFileError("cannot read entry", path, errors.EntryUnreadable, err)).
				Warn("Skipping entry")
			continue
		}
		if info.IsDir() {
			continue
		}
		paths = append(paths, path)
	}

	log.Debugf("Scanned %s: %d descriptor(s)", dir, len(paths))
	return paths
}
