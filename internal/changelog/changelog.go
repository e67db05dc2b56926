package changelog

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Changelog is the root of the loaded model: the optional unreleased change
// set plus every release, in sorted order. The tree is built once per Load
// call and treated as read-only afterwards.
type Changelog struct {
	// Unreleased holds changes not yet attributed to a release, or nil when
	// the unreleased directory does not exist.
	Unreleased *ChangeSet
	// Releases in the configured sort order (newest first by default).
	Releases []*Release
	// Prologue is optional content rendered before all releases.
	Prologue string
	// Epilogue is optional content rendered after all releases, e.g.
	// historical changelog content predating the switch to this tool.
	Epilogue string
}

// IsEmpty reports whether the changelog has no content at all: no unreleased
// entries, only empty releases, and no prologue or epilogue.
func (c *Changelog) IsEmpty() bool {
	if c.Unreleased != nil && !c.Unreleased.IsEmpty() {
		return false
	}
	for _, r := range c.Releases {
		if !r.Changes.IsEmpty() {
			return false
		}
	}
	return c.Prologue == "" && c.Epilogue == ""
}

// Load reads a full changelog from the given directory. The first error of
// any kind aborts the load; there is no partial result.
func Load(cfg *Config, dir string, resolver ComponentResolver) (*Changelog, error) {
	slog.Info("loading changelog", "dir", dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &IOError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &ExpectedDirError{Path: dir}
	}

	unreleased, err := loadChangeSetOpt(cfg, filepath.Join(dir, cfg.Unreleased.Folder), resolver)
	if err != nil {
		return nil, err
	}

	releaseDirs, err := readDirFiltered(dir, func(e os.DirEntry) bool {
		return e.IsDir() && e.Name() != cfg.Unreleased.Folder
	})
	if err != nil {
		return nil, err
	}
	releases := make([]*Release, 0, len(releaseDirs))
	for _, rd := range releaseDirs {
		r, err := loadRelease(cfg, rd, resolver)
		if err != nil {
			return nil, err
		}
		releases = append(releases, r)
	}
	sortReleases(cfg, releases)

	prologue, _, err := readFileOpt(filepath.Join(dir, cfg.PrologueFilename))
	if err != nil {
		return nil, err
	}
	epilogue, _, err := readFileOpt(filepath.Join(dir, cfg.EpilogueFilename))
	if err != nil {
		return nil, err
	}

	return &Changelog{
		Unreleased: unreleased,
		Releases:   releases,
		Prologue:   trimNewlines(prologue),
		Epilogue:   trimNewlines(epilogue),
	}, nil
}

// sortReleases orders releases by the configured criteria list. Each
// criterion is consulted in turn; when it reports the two releases equal (or
// incomparable, such as a missing date), the next criterion decides. When
// every criterion is exhausted, version descending breaks the tie.
func sortReleases(cfg *Config, releases []*Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		a, b := releases[i], releases[j]
		for _, criterion := range cfg.SortReleasesBy {
			switch criterion {
			case SortReleasesByVersion:
				if c := a.Version.Compare(b.Version); c != 0 {
					return c > 0
				}
			case SortReleasesByDate:
				if a.Date == nil || b.Date == nil {
					continue
				}
				if !a.Date.Equal(*b.Date) {
					return a.Date.After(*b.Date)
				}
			}
		}
		return a.Version.Compare(b.Version) > 0
	})
}
