package changelog

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
)

// Entry is a single change note, backed by one file on disk.
type Entry struct {
	// Filename is the base name of the backing file (e.g. "830-fix-thing.md").
	Filename string
	// ID is the issue/pull request number parsed from the filename's leading
	// run of decimal digits.
	ID uint64
	// Details is the file's content with trailing newlines trimmed. It
	// includes its own bullet marker.
	Details string
}

func (e *Entry) String() string { return e.Details }

// loadEntry reads a single entry file.
func loadEntry(path string) (*Entry, error) {
	slog.Debug("loading entry", "path", path)
	name := filepath.Base(path)
	id, err := extractEntryID(name)
	if err != nil {
		return nil, err
	}
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return &Entry{
		Filename: name,
		ID:       id,
		Details:  trimNewlines(content),
	}, nil
}

// extractEntryID parses the leading run of decimal digits from an entry
// filename. A filename without a leading digit is invalid.
func extractEntryID(name string) (uint64, error) {
	digits := 0
	for digits < len(name) && name[digits] >= '0' && name[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, &InvalidEntryIDError{Name: name}
	}
	id, err := strconv.ParseUint(name[:digits], 10, 64)
	if err != nil {
		return 0, &InvalidEntryIDError{Name: name}
	}
	return id, nil
}

// loadEntriesSorted loads every given entry file and sorts the result by the
// configured key. The sort is stable, so equal keys keep enumeration order.
func loadEntriesSorted(cfg *Config, paths []string) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(paths))
	for _, p := range paths {
		e, err := loadEntry(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	switch cfg.ChangeSetSections.SortEntriesBy {
	case SortEntriesByText:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Details < entries[j].Details
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].ID < entries[j].ID
		})
	}
	return entries, nil
}
