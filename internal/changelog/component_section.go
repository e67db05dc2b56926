package changelog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ComponentResolver resolves a component directory name to its declaration.
// Implementations return (nil, nil) when the ID is unknown; the loader turns
// that into a ComponentNotDefinedError, since an entry referencing an
// undeclared component is a hard load error.
type ComponentResolver interface {
	Resolve(id string) (*Component, error)
}

// ComponentSection groups the entries of one section that are attributed to a
// specific component.
type ComponentSection struct {
	// ID is the component's directory name.
	ID string
	// Name is the component's resolved display name.
	Name string
	// Path is the component's path relative to the project root, already
	// rendered; empty when the component has no known path.
	Path string
	// Entries attributed to this component, in sorted order.
	Entries []*Entry
}

// IsEmpty reports whether this section has no entries.
func (cs *ComponentSection) IsEmpty() bool {
	return len(cs.Entries) == 0
}

// loadComponentSection reads one component directory within a section.
func loadComponentSection(cfg *Config, path string, resolver ComponentResolver) (*ComponentSection, error) {
	slog.Debug("loading component section", "path", path)
	id := filepath.Base(path)
	component, err := resolver.Resolve(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, &ComponentNotDefinedError{ID: id}
	}
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
	name := component.Name
	if name == "" {
		name = id
	}
	return &ComponentSection{
		ID:      id,
		Name:    name,
		Path:    component.Path,
		Entries: entries,
	}, nil
}

// render produces this component's bulleted block: a hyperlinked (when the
// path is known) name line followed by the indented entries.
func (cs *ComponentSection) render(cfg *Config) string {
	name := cs.Name
	if cs.Path != "" {
		name = fmt.Sprintf("[%s](%s)", cs.Name, cs.Path)
	}
	lines := []string{fmt.Sprintf("%s %s", cfg.BulletStyle, name)}
	lines = append(lines, indentEntries(cs.Entries, cfg.Components.EntryIndent, cfg.Components.EntryIndent+2)...)
	return strings.Join(lines, "\n")
}

// isEntryFile reports whether a directory entry is a change entry file: a
// regular file carrying the configured extension. The summary file has no
// leading digits and is filtered out by name.
func isEntryFile(cfg *Config, e os.DirEntry) bool {
	if e.IsDir() {
		return false
	}
	if e.Name() == cfg.ChangeSets.SummaryFilename {
		return false
	}
	return strings.TrimPrefix(filepath.Ext(e.Name()), ".") == cfg.ChangeSets.EntryExt
}
