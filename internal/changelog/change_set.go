package changelog

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ChangeSet is the full set of changes belonging either to the unreleased
// bucket or to one release.
type ChangeSet struct {
	// Summary is an optional high-level description of the change set, read
	// from the configured summary file.
	Summary string
	// Sections in ascending title order.
	Sections []*ChangeSetSection
}

// IsEmpty reports whether the change set has no summary and no entries.
func (cs *ChangeSet) IsEmpty() bool {
	return cs.Summary == "" && cs.AreSectionsEmpty()
}

// AreSectionsEmpty reports whether every section of the change set is empty.
func (cs *ChangeSet) AreSectionsEmpty() bool {
	for _, s := range cs.Sections {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

// loadChangeSet reads one change set directory: the optional summary file
// plus one section per subdirectory.
func loadChangeSet(cfg *Config, path string, resolver ComponentResolver) (*ChangeSet, error) {
	slog.Debug("loading change set", "path", path)
	summary, _, err := readFileOpt(filepath.Join(path, cfg.ChangeSets.SummaryFilename))
	if err != nil {
		return nil, err
	}
	sectionDirs, err := readDirFiltered(path, func(e os.DirEntry) bool {
		return e.IsDir()
	})
	if err != nil {
		return nil, err
	}
	sections := make([]*ChangeSetSection, 0, len(sectionDirs))
	for _, dir := range sectionDirs {
		s, err := loadChangeSetSection(cfg, dir, resolver)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Title < sections[j].Title
	})
	return &ChangeSet{
		Summary:  trimNewlines(summary),
		Sections: sections,
	}, nil
}

// loadChangeSetOpt is loadChangeSet, but returns nil without error when the
// directory does not exist. A missing unreleased directory is not an error;
// it is the "no unreleased changes" state, distinct from an empty change set.
func loadChangeSetOpt(cfg *Config, path string, resolver ComponentResolver) (*ChangeSet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return loadChangeSet(cfg, path, resolver)
}

// render produces the change set's body: the optional summary followed by
// each non-empty section, blank-line separated.
func (cs *ChangeSet) render(cfg *Config) string {
	var paragraphs []string
	if cs.Summary != "" {
		paragraphs = append(paragraphs, cs.Summary)
	}
	for _, s := range cs.Sections {
		if !s.IsEmpty() {
			paragraphs = append(paragraphs, s.render(cfg))
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
