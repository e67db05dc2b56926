package changelog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Release is the change set belonging to one released version.
type Release struct {
	// ID is the raw release directory name (e.g. "v0.2.1").
	ID string
	// Version is the semantic version parsed from the ID.
	Version *semver.Version
	// Date is the release date parsed from the first line of the change set
	// summary, or nil when no configured format matched.
	Date *time.Time
	// Changes associated with this release.
	Changes *ChangeSet
}

// loadRelease reads one release directory.
func loadRelease(cfg *Config, path string, resolver ComponentResolver) (*Release, error) {
	slog.Debug("loading release", "path", path)
	if !dirExists(path) {
		return nil, &ExpectedDirError{Path: path}
	}
	id := filepath.Base(path)
	raw, err := extractVersion(id)
	if err != nil {
		return nil, err
	}
	version, err := semver.StrictNewVersion(raw)
	if err != nil {
		return nil, &VersionParseError{Raw: raw, Err: err}
	}
	changes, err := loadChangeSet(cfg, path, resolver)
	if err != nil {
		return nil, err
	}
	return &Release{
		ID:      id,
		Version: version,
		Date:    parseReleaseDate(cfg, changes.Summary),
		Changes: changes,
	}, nil
}

// parseReleaseDate tries each configured layout, in order, against the first
// line of the summary. The first layout that parses wins; no match yields nil.
func parseReleaseDate(cfg *Config, summary string) *time.Time {
	if summary == "" {
		return nil
	}
	firstLine, _, _ := strings.Cut(summary, "\n")
	for _, layout := range cfg.ReleaseDateFormats {
		if date, err := time.Parse(layout, firstLine); err == nil {
			return &date
		}
	}
	return nil
}

// render produces this release's heading and, when non-empty, its body.
func (r *Release) render(cfg *Config) string {
	paragraphs := []string{fmt.Sprintf("## %s", r.ID)}
	if !r.Changes.IsEmpty() {
		paragraphs = append(paragraphs, r.Changes.render(cfg))
	}
	return strings.Join(paragraphs, "\n\n")
}

// extractVersion returns the substring of a release directory name starting
// at its first digit. A name with no digit fails.
func extractVersion(name string) (string, error) {
	if i := strings.IndexFunc(name, func(r rune) bool { return r >= '0' && r <= '9' }); i >= 0 {
		return name[i:], nil
	}
	return "", &NoVersionError{Name: name}
}
