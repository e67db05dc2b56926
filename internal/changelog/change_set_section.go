package changelog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ChangeSetSection is a titled category of changes within a change set, such
// as "FEATURES" or "BREAKING CHANGES".
type ChangeSetSection struct {
	// ID is the section's directory name (e.g. "breaking-changes").
	ID string
	// Title is derived from the ID: hyphens become spaces, upper-cased.
	Title string
	// Entries not attributed to any component, in sorted order.
	Entries []*Entry
	// ComponentSections holds per-component entries, sorted by component ID.
	ComponentSections []*ComponentSection
}

// IsEmpty reports whether the section has no entries at all.
func (s *ChangeSetSection) IsEmpty() bool {
	return len(s.Entries) == 0 && len(s.ComponentSections) == 0
}

// loadChangeSetSection reads one section directory. Files carrying the entry
// extension become general entries; subdirectories become component sections.
func loadChangeSetSection(cfg *Config, path string, resolver ComponentResolver) (*ChangeSetSection, error) {
	slog.Debug("loading section", "path", path)
	id := filepath.Base(path)

	componentDirs, err := readDirFiltered(path, func(e os.DirEntry) bool {
		return e.IsDir()
	})
	if err != nil {
		return nil, err
	}
	componentSections := make([]*ComponentSection, 0, len(componentDirs))
	for _, dir := range componentDirs {
		cs, err := loadComponentSection(cfg, dir, resolver)
		if err != nil {
			return nil, err
		}
		componentSections = append(componentSections, cs)
	}
	sort.SliceStable(componentSections, func(i, j int) bool {
		return componentSections[i].ID < componentSections[j].ID
	})

	entryPaths, err := readDirFiltered(path, func(e os.DirEntry) bool {
		return isEntryFile(cfg, e)
	})
	if err != nil {
		return nil, err
	}
	entries, err := loadEntriesSorted(cfg, entryPaths)
	if err != nil {
		return nil, err
	}

	return &ChangeSetSection{
		ID:                id,
		Title:             sectionTitle(id),
		Entries:           entries,
		ComponentSections: componentSections,
	}, nil
}

// render produces the section's heading and body. Without component sections
// the general entries are listed as-is; with them, general entries are
// grouped under the configured sub-heading and indented, followed by each
// component's own block.
func (s *ChangeSetSection) render(cfg *Config) string {
	var lines []string
	if len(s.ComponentSections) == 0 {
		for _, e := range s.Entries {
			lines = append(lines, e.Details)
		}
	} else {
		if len(s.Entries) > 0 {
			lines = append(lines, fmt.Sprintf("%s %s", cfg.BulletStyle, cfg.Components.GeneralEntriesTitle))
			lines = append(lines, indentEntries(s.Entries, cfg.Components.EntryIndent, cfg.Components.EntryIndent+2)...)
		}
		for _, cs := range s.ComponentSections {
			lines = append(lines, cs.render(cfg))
		}
	}
	return fmt.Sprintf("### %s\n\n%s", s.Title, strings.Join(lines, "\n"))
}

// sectionTitle derives a section title from its directory name, e.g.
// "breaking-changes" becomes "BREAKING CHANGES".
func sectionTitle(id string) string {
	return strings.ToUpper(strings.ReplaceAll(id, "-", " "))
}

// indentBulleted indents each line of a bulleted Markdown string: lines
// starting with a bullet marker get indent spaces, continuation lines get
// overflowIndent spaces.
func indentBulleted(s string, indent, overflowIndent int) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		width := overflowIndent
		if strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "-") {
			width = indent
		}
		lines = append(lines, strings.Repeat(" ", width)+trimmed)
	}
	return lines
}

func indentEntries(entries []*Entry, indent, overflowIndent int) []string {
	var lines []string
	for _, e := range entries {
		lines = append(lines, indentBulleted(e.Details, indent, overflowIndent)...)
	}
	return lines
}
