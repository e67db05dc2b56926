package changelog

import (
	"errors"
	"fmt"
)

// ErrNoUnreleasedEntries is returned by RenderUnreleased when the changelog
// has no unreleased change set, or the unreleased change set is empty.
var ErrNoUnreleasedEntries = errors.New("no unreleased entries yet")

// IOError wraps a filesystem failure together with the offending path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("I/O error on %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ExpectedDirError indicates a path that was expected to be a directory.
type ExpectedDirError struct {
	Path string
}

func (e *ExpectedDirError) Error() string {
	return fmt.Sprintf("expected path to be a directory: %s", e.Path)
}

// DirExistsError indicates a directory that must not yet exist already does.
type DirExistsError struct {
	Path string
}

func (e *DirExistsError) Error() string {
	return fmt.Sprintf("directory already exists: %s", e.Path)
}

// FileExistsError indicates a file that must not yet exist already does.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// InvalidEntryIDError indicates an entry filename that does not start with a
// run of decimal digits.
type InvalidEntryIDError struct {
	Name string
}

func (e *InvalidEntryIDError) Error() string {
	return fmt.Sprintf("expected entry ID to start with a number, but got: %q", e.Name)
}

// NoVersionError indicates a release directory name containing no digits, so
// no version substring could be extracted from it.
type NoVersionError struct {
	Name string
}

func (e *NoVersionError) Error() string {
	return fmt.Sprintf("cannot extract version from %q", e.Name)
}

// VersionParseError indicates a version substring that is not valid semver.
type VersionParseError struct {
	Raw string
	Err error
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("invalid semantic version %q: %v", e.Raw, e.Err)
}

func (e *VersionParseError) Unwrap() error { return e.Err }

// ComponentNotDefinedError indicates an entry referenced a component directory
// whose ID no resolver could resolve.
type ComponentNotDefinedError struct {
	ID string
}

func (e *ComponentNotDefinedError) Error() string {
	return fmt.Sprintf("component not defined: %q", e.ID)
}
