package config

import (
	"fmt"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

// Validate checks that every configuration value is usable.
func Validate(cfg *changelog.Config) error {
	if !cfg.BulletStyle.Valid() {
		return fmt.Errorf("invalid bullet_style %q: must be \"-\" or \"*\"", cfg.BulletStyle)
	}
	switch cfg.ChangeSetSections.SortEntriesBy {
	case changelog.SortEntriesByID, changelog.SortEntriesByText:
	default:
		return fmt.Errorf("invalid sort_entries_by %q: must be \"id\" or \"entry-text\"",
			cfg.ChangeSetSections.SortEntriesBy)
	}
	if len(cfg.SortReleasesBy) == 0 {
		return fmt.Errorf("sort_releases_by must name at least one criterion")
	}
	for _, c := range cfg.SortReleasesBy {
		switch c {
		case changelog.SortReleasesByVersion, changelog.SortReleasesByDate:
		default:
			return fmt.Errorf("invalid sort_releases_by criterion %q: must be \"version\" or \"date\"", c)
		}
	}
	if cfg.Wrap < 0 {
		return fmt.Errorf("wrap must be non-negative, got %d", cfg.Wrap)
	}
	if cfg.Components.EntryIndent < 1 {
		return fmt.Errorf("entry_indent must be at least 1, got %d", cfg.Components.EntryIndent)
	}
	if len(cfg.ReleaseDateFormats) == 0 {
		return fmt.Errorf("release_date_formats must name at least one layout")
	}
	if cfg.Unreleased.Folder == "" {
		return fmt.Errorf("unreleased folder name must not be empty")
	}
	if cfg.ChangeSets.EntryExt == "" {
		return fmt.Errorf("entry_ext must not be empty")
	}
	return nil
}
