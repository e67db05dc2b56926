// Package config provides hierarchical configuration management for chlog
// using koanf. Configuration is loaded with priority: environment variables >
// changelog config file (<changelog dir>/config.toml) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

// Filename is the name of the config file inside the changelog directory.
const Filename = "config.toml"

// ConfigSource tracks where a configuration value came from.
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceFile    ConfigSource = "file"
	SourceEnv     ConfigSource = "env"
)

// EnvPrefix is the prefix for environment variable overrides.
// Nested keys use a double underscore: CHLOG_UNRELEASED__FOLDER sets
// unreleased.folder.
const EnvPrefix = "CHLOG_"

// Load loads configuration for the changelog at dir.
// Priority: Environment variables > <dir>/config.toml > Defaults.
// A missing config file is not an error; defaults apply.
func Load(dir string) (*changelog.Config, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	path := filepath.Join(dir, Filename)
	if fileExists(path) {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg changelog.Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: CHLOG_UNRELEASED__FOLDER -> unreleased.folder
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
