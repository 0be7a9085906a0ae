// Package catalog holds the applications discovered at startup and filters
// them by search query.
package catalog

import (
	"strings"

	"applauncher/internal/desktop"
	"applauncher/internal/errors"
	"applauncher/internal/log"

	"golang.org/x/text/cases"
)

// Catalog is the ordered, read-only list of loaded entries. It is built once
// and shared by pointer.
type Catalog struct {
	entries []desktop.Entry
}

// New builds a catalog from entries, copying the slice.
func New(entries []desktop.Entry) *Catalog {
	c := &Catalog{entries: make([]desktop.Entry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Build scans dirs and loads every descriptor found, in discovery order.
// Descriptors that fail to load are logged and left out.
func Build(scanner *desktop.Scanner, dirs []string) *Catalog {
	log.Debugf("Scanning %v for %s", dirs, scanner.Pattern())
	paths := scanner.Scan(dirs)

	entries := make([]desktop.Entry, 0, len(paths))
	skipped := 0
	for _, path := range paths {
		entry, err := desktop.Load(path)
		if err != nil {
			skipped++
			if errors.IsMissingField(err) {
				log.LogWithError(err).Debug("Skipping incomplete descriptor")
			} else {
				log.LogWithError(err).Warn("Skipping descriptor")
			}
			continue
		}
		entries = append(entries, entry)
	}

	log.WithFields(
		log.F("found", len(paths)),
		log.F("loaded", len(entries)),
		log.F("skipped", skipped),
	).Info("Catalog built")

	return &Catalog{entries: entries}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries.
func (c *Catalog) Entries() []desktop.Entry {
	out := make([]desktop.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Filter returns the entries whose name contains query, ignoring case.
func (c *Catalog) Filter(query string) []desktop.Entry {
	return Filter(c.entries, query)
}

// Filter returns, in order, the entries whose case-folded name contains the
// case-folded query. An empty query matches every entry. The result never
// aliases entries.
func Filter(entries []desktop.Entry, query string) []desktop.Entry {
	out := make([]desktop.Entry, 0, len(entries))
	if query == "" {
		return append(out, entries...)
	}

	fold := cases.Fold()
	needle := fold.String(query)
	for _, e := range entries {
		if strings.Contains(fold.String(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}
