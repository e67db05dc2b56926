package changelog

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// readDirFiltered lists the immediate children of path, keeping only those the
// filter accepts, and returns their full paths. os.ReadDir yields entries in
// filename order, which fixes the enumeration order ties are broken by.
func readDirFiltered(path string, keep func(os.DirEntry) bool) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	var paths []string
	for _, e := range entries {
		if keep(e) {
			paths = append(paths, filepath.Join(path, e.Name()))
		}
	}
	return paths, nil
}

// readFile reads a whole file, wrapping failures with the offending path.
func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	return string(b), nil
}

// readFileOpt reads a whole file, reporting ok=false without error when the
// file does not exist.
func readFileOpt(path string) (content string, ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		return "", false, nil
	}
	content, err = readFile(path)
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ensureDir creates path if missing and fails if it exists as a non-directory.
func ensureDir(path string) error {
	if _, err := os.Stat(path); err != nil {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return &IOError{Path: path, Err: err}
		}
		slog.Debug("created directory", "path", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return &ExpectedDirError{Path: path}
	}
	return nil
}

// removeGitkeep deletes a .gitkeep placeholder from path, if one is present.
func removeGitkeep(path string) error {
	keep := filepath.Join(path, ".gitkeep")
	if _, err := os.Stat(keep); err != nil {
		return nil
	}
	if err := os.Remove(keep); err != nil {
		return &IOError{Path: keep, Err: err}
	}
	slog.Debug("removed .gitkeep", "path", keep)
	return nil
}

// trimNewlines strips trailing newline and carriage return characters.
func trimNewlines(s string) string {
	return strings.TrimRight(s, "\n\r")
}
