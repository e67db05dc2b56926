package changelog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// InitDir creates an empty changelog skeleton at dir: the directory itself,
// an unreleased folder holding a .gitkeep, and optionally a prologue and
// epilogue copied from the given paths. Existing prologue/epilogue files are
// left untouched.
func InitDir(cfg *Config, dir, prologuePath, epiloguePath string) error {
	if err := ensureDir(dir); err != nil {
		return err
	}
	if prologuePath != "" {
		if err := copyFileIfAbsent(prologuePath, filepath.Join(dir, cfg.PrologueFilename)); err != nil {
			return err
		}
	}
	if epiloguePath != "" {
		if err := copyFileIfAbsent(epiloguePath, filepath.Join(dir, cfg.EpilogueFilename)); err != nil {
			return err
		}
	}
	return initEmptyUnreleasedDir(cfg, dir)
}

// AddUnreleasedEntry writes a new entry file with the given ID to the named
// section (and component, when non-empty) in the unreleased folder, creating
// intermediate directories as needed. Existing entries are never overwritten.
func AddUnreleasedEntry(cfg *Config, dir, section, component, id, content string) error {
	entryDir := filepath.Join(dir, cfg.Unreleased.Folder, section)
	if component != "" {
		if _, declared := cfg.Components.All[component]; !declared {
			return &ComponentNotDefinedError{ID: component}
		}
		entryDir = filepath.Join(entryDir, component)
	}
	if err := ensureDir(entryDir); err != nil {
		return err
	}
	entryPath := filepath.Join(entryDir, entryFilename(cfg, id))
	if _, err := os.Stat(entryPath); err == nil {
		return &FileExistsError{Path: entryPath}
	}
	if err := os.WriteFile(entryPath, []byte(content), 0o644); err != nil {
		return &IOError{Path: entryPath, Err: err}
	}
	slog.Info("wrote entry", "path", entryPath)
	return nil
}

// EntryFilePath computes the filesystem path of the entry with the given
// coordinates, relative to the changelog directory.
func EntryFilePath(cfg *Config, release, section, component, id string) string {
	path := filepath.Join(release, section)
	if component != "" {
		path = filepath.Join(path, component)
	}
	return filepath.Join(path, entryFilename(cfg, id))
}

// PrepareReleaseDir moves the unreleased folder to a directory named after
// the given version, then recreates an empty unreleased folder. The version
// must contain a valid semantic version and the target must not exist yet.
func PrepareReleaseDir(cfg *Config, dir, version string) error {
	raw, err := extractVersion(version)
	if err != nil {
		return err
	}
	if _, err := semver.StrictNewVersion(raw); err != nil {
		return &VersionParseError{Raw: raw, Err: err}
	}

	versionPath := filepath.Join(dir, version)
	if _, err := os.Stat(versionPath); err == nil {
		return &DirExistsError{Path: versionPath}
	}
	unreleasedPath := filepath.Join(dir, cfg.Unreleased.Folder)
	if !dirExists(unreleasedPath) {
		return &ExpectedDirError{Path: unreleasedPath}
	}
	if err := os.Rename(unreleasedPath, versionPath); err != nil {
		return &IOError{Path: unreleasedPath, Err: err}
	}
	slog.Info("moved unreleased entries", "from", unreleasedPath, "to", versionPath)
	if err := removeGitkeep(versionPath); err != nil {
		return err
	}
	return initEmptyUnreleasedDir(cfg, dir)
}

func initEmptyUnreleasedDir(cfg *Config, dir string) error {
	unreleasedDir := filepath.Join(dir, cfg.Unreleased.Folder)
	if err := ensureDir(unreleasedDir); err != nil {
		return err
	}
	keep := filepath.Join(unreleasedDir, ".gitkeep")
	if err := os.WriteFile(keep, nil, 0o644); err != nil {
		return &IOError{Path: keep, Err: err}
	}
	return nil
}

func copyFileIfAbsent(src, dst string) error {
	if fileExists(dst) {
		slog.Info("file already exists, not copying", "path", dst)
		return nil
	}
	content, err := readFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
		return &IOError{Path: dst, Err: err}
	}
	slog.Info("copied file", "from", src, "to", dst)
	return nil
}

func entryFilename(cfg *Config, id string) string {
	return fmt.Sprintf("%s.%s", id, cfg.ChangeSets.EntryExt)
}
