package config

import (
	"fmt"
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

// Save writes cfg as TOML to <dir>/config.toml, creating the directory if
// needed. An existing file is overwritten.
func Save(cfg *changelog.Config, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(dir, Filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// SaveTemplate writes the commented default template to <dir>/config.toml
// unless one already exists.
func SaveTemplate(dir string) error {
	path := filepath.Join(dir, Filename)
	if fileExists(path) {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GetDefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
