package desktop

import (
	"bytes"
	"os"
	"strings"

	"applauncher/internal/errors"

	"gopkg.in/ini.v1"
)

// Descriptor values must reach the shell untouched, so every value rewrite
// the parser offers is switched off.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
	KeyValueDelimiters:      "=",
}

// maskedValue stands in for values the parser would otherwise unquote.
const maskedValue = "masked"

type rawKey struct {
	section string
	key     string
}

// Load parses one descriptor file. It returns a parse error for files the
// parser rejects and a missing-field error when Name or Exec is absent or
// empty in the main section.
func Load(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, errors.NewFileError("cannot parse descriptor", path, errors.DescriptorParseFailed, err)
	}

	masked, raw := maskQuotedValues(data)
	file, err := ini.LoadSources(loadOptions, masked)
	if err != nil {
		return Entry{}, errors.NewFileError("cannot parse descriptor", path, errors.DescriptorParseFailed, err)
	}

	section, err := file.GetSection(MainSection)
	if err != nil {
		return Entry{}, errors.NewDescriptorError("required field missing", path, KeyName, err)
	}

	name := value(section, raw, KeyName)
	if name == "" {
		return Entry{}, errors.NewDescriptorError("required field missing", path, KeyName, nil)
	}
	exec := value(section, raw, KeyExec)
	if exec == "" {
		return Entry{}, errors.NewDescriptorError("required field missing", path, KeyExec, nil)
	}

	return Entry{Name: name, Exec: exec, Path: path}, nil
}

func value(section *ini.Section, raw map[rawKey]string, key string) string {
	if !section.HasKey(key) {
		return ""
	}
	if v, ok := raw[rawKey{section.Name(), key}]; ok {
		return v
	}
	return section.Key(key).Value()
}

// maskQuotedValues hides values opening with a backtick or a triple quote.
// The parser treats those as quoted, possibly across several lines, which
// would cut an Exec line short or swallow the keys after it. The original
// values are returned keyed by section and key; the last occurrence wins, as
// it does in the parser.
func maskQuotedValues(data []byte) ([]byte, map[rawKey]string) {
	raw := make(map[rawKey]string)
	lines := bytes.Split(data, []byte("\n"))
	section := ini.DefaultSection

	for i, line := range lines {
		trimmed := strings.TrimSpace(string(line))
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';' {
			continue
		}
		if trimmed[0] == '[' {
			if end := strings.LastIndexByte(trimmed, ']'); end > 0 {
				section = strings.TrimSpace(trimmed[1:end])
			}
			continue
		}

		key, val, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		k := rawKey{section, strings.TrimSpace(key)}
		val = strings.TrimSpace(val)
		if !strings.HasPrefix(val, "`") && !strings.HasPrefix(val, `"""`) {
			delete(raw, k)
			continue
		}
		raw[k] = val
		lines[i] = []byte(k.key + "=" + maskedValue)
	}
	return bytes.Join(lines, []byte("\n")), raw
}
