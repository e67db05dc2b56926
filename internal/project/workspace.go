package project

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

// GoWorkspaceResolver discovers components by scanning a project tree for Go
// modules. Each directory containing a go.mod becomes a component whose name
// is the final element of the module path and whose path is the directory's
// path relative to the project root. Modules are matched by directory name
// and by module name.
type GoWorkspaceResolver struct {
	root       string
	components map[string]changelog.Component
}

// NewGoWorkspaceResolver scans root and indexes every Go module beneath it.
// Hidden directories are skipped.
func NewGoWorkspaceResolver(root string) (*GoWorkspaceResolver, error) {
	r := &GoWorkspaceResolver{
		root:       root,
		components: make(map[string]changelog.Component),
	}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != "go.mod" {
			return nil
		}
		return r.index(p)
	})
	if err != nil {
		return nil, fmt.Errorf("scanning workspace %s: %w", root, err)
	}
	return r, nil
}

// index parses a go.mod and registers the surrounding directory as a
// component.
func (r *GoWorkspaceResolver) index(goModPath string) error {
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", goModPath, err)
	}
	f, err := modfile.ParseLax(goModPath, data, nil)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", goModPath, err)
	}
	if f.Module == nil {
		slog.Debug("go.mod without module directive, skipping", "path", goModPath)
		return nil
	}

	dir := filepath.Dir(goModPath)
	rel, err := filepath.Rel(r.root, dir)
	if err != nil {
		return err
	}
	component := changelog.Component{
		Name: path.Base(f.Module.Mod.Path),
		Path: "./" + filepath.ToSlash(rel) + "/",
	}
	if rel == "." {
		component.Path = "./"
	}

	// Both the directory name and the module's final path element resolve
	// to this component. Directory names win on collision.
	if _, taken := r.components[component.Name]; !taken {
		r.components[component.Name] = component
	}
	if rel != "." {
		r.components[filepath.Base(dir)] = component
	}
	slog.Debug("indexed workspace module", "module", f.Module.Mod.Path, "dir", rel)
	return nil
}

// Resolve returns the discovered component, or nil when no module matches.
func (r *GoWorkspaceResolver) Resolve(id string) (*changelog.Component, error) {
	c, ok := r.components[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
