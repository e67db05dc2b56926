package changelog

import "path/filepath"

// The entry path family locates one entry unambiguously within a loaded
// changelog: which release (or the unreleased bucket), which section, and
// whether the entry is general or belongs to a component section. Paths are
// borrowed views over the loaded tree. They own nothing and must not outlive
// the Changelog they were produced from. All fields are pointers into the
// tree, so two paths compare equal with == exactly when every branch choice
// and the terminal entry reference match.

// ChangeSetComponentPath records the innermost branch: a general entry, or an
// entry within a specific component section.
type ChangeSetComponentPath struct {
	// Component is nil for a general entry.
	Component *ComponentSection
	Entry     *Entry
}

// RelPath is the path of the entry file relative to its section directory.
func (p ChangeSetComponentPath) RelPath() string {
	if p.Component != nil {
		return filepath.Join(p.Component.ID, p.Entry.Filename)
	}
	return p.Entry.Filename
}

// ChangeSetSectionPath locates an entry within a specific section.
type ChangeSetSectionPath struct {
	Section   *ChangeSetSection
	Component ChangeSetComponentPath
}

// RelPath is the path of the entry file relative to its change set directory.
func (p ChangeSetSectionPath) RelPath() string {
	return filepath.Join(p.Section.ID, p.Component.RelPath())
}

// Entry returns the terminal entry.
func (p ChangeSetSectionPath) Entry() *Entry {
	return p.Component.Entry
}

// EntryChangeSetPath locates an entry within a specific change set.
type EntryChangeSetPath struct {
	ChangeSet *ChangeSet
	Section   ChangeSetSectionPath
}

func (p EntryChangeSetPath) RelPath() string {
	return p.Section.RelPath()
}

func (p EntryChangeSetPath) Entry() *Entry {
	return p.Section.Entry()
}

// EntryReleasePath records whether an entry lives in the unreleased bucket or
// in a specific release.
type EntryReleasePath struct {
	// Release is nil for the unreleased change set.
	Release   *Release
	ChangeSet EntryChangeSetPath
}

// RelPath is the path of the entry file relative to the changelog directory.
func (p EntryReleasePath) RelPath(cfg *Config) string {
	if p.Release != nil {
		return filepath.Join(p.Release.ID, p.ChangeSet.RelPath())
	}
	return filepath.Join(cfg.Unreleased.Folder, p.ChangeSet.RelPath())
}

func (p EntryReleasePath) Entry() *Entry {
	return p.ChangeSet.Entry()
}

// EntryPath is a precise path through a specific changelog to one entry.
type EntryPath struct {
	Changelog *Changelog
	Release   EntryReleasePath
}

// RelPath reconstructs the entry file's path relative to the changelog
// directory.
func (p EntryPath) RelPath(cfg *Config) string {
	return p.Release.RelPath(cfg)
}

// Entry returns the entry this path terminates at.
func (p EntryPath) Entry() *Entry {
	return p.Release.Entry()
}
