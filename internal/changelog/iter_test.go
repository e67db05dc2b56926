package changelog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectRelPaths(cfg *Config, c *Changelog) []string {
	var paths []string
	it := c.Entries()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		paths = append(paths, filepath.ToSlash(p.RelPath(cfg)))
	}
	return paths
}

func TestEntryIteratorRenderOrder(t *testing.T) {
	dir, resolver := fullFixture(t)
	cfg := DefaultConfig()

	c, err := Load(cfg, dir, resolver)
	require.NoError(t, err)

	want := []string{
		"unreleased/breaking-changes/890-remove-api.md",
		"unreleased/features/900-new-thing.md",
		"v0.2.0/features/10-general.md",
		"v0.2.0/features/core/11-core.md",
		"v0.1.0/features/1-first.md",
	}
	assert.Equal(t, want, collectRelPaths(cfg, c))
}

func TestEntryIteratorRestarts(t *testing.T) {
	dir, resolver := fullFixture(t)
	cfg := DefaultConfig()

	c, err := Load(cfg, dir, resolver)
	require.NoError(t, err)

	first := collectRelPaths(cfg, c)
	second := collectRelPaths(cfg, c)
	assert.Equal(t, first, second)
}

func TestEntryIteratorEmptyChangelog(t *testing.T) {
	it := (&Changelog{}).Entries()
	_, ok := it.Next()
	assert.False(t, ok)

	// Next stays exhausted after reporting completion.
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestEntryIteratorSkipsEmptySections(t *testing.T) {
	e := &Entry{Filename: "5-x.md", ID: 5, Details: "- X"}
	c := &Changelog{
		Unreleased: &ChangeSet{
			Sections: []*ChangeSetSection{
				{ID: "breaking-changes", Title: "BREAKING CHANGES"},
				{
					ID:    "features",
					Title: "FEATURES",
					ComponentSections: []*ComponentSection{
						{ID: "empty", Name: "empty"},
						{ID: "core", Name: "core", Entries: []*Entry{e}},
					},
				},
				{ID: "removed", Title: "REMOVED"},
			},
		},
	}

	it := c.Entries()
	p, ok := it.Next()
	require.True(t, ok)
	assert.Same(t, e, p.Entry())
	assert.Equal(t, "core", p.Release.ChangeSet.Section.Component.Component.ID)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestEntryIteratorPathFields(t *testing.T) {
	dir, resolver := fullFixture(t)
	cfg := DefaultConfig()

	c, err := Load(cfg, dir, resolver)
	require.NoError(t, err)

	it := c.Entries()
	p, ok := it.Next()
	require.True(t, ok)
	assert.Same(t, c, p.Changelog)
	assert.Nil(t, p.Release.Release)
	assert.Equal(t, "breaking-changes", p.Release.ChangeSet.Section.Section.ID)
	assert.Nil(t, p.Release.ChangeSet.Section.Component.Component)

	// Skip to the first released entry.
	for ; ok; p, ok = it.Next() {
		if p.Release.Release != nil {
			break
		}
	}
	require.True(t, ok)
	assert.Equal(t, "v0.2.0", p.Release.Release.ID)
}

func TestFindDuplicates(t *testing.T) {
	t.Run("no duplicates", func(t *testing.T) {
		dir, resolver := fullFixture(t)
		cfg := DefaultConfig()
		c, err := Load(cfg, dir, resolver)
		require.NoError(t, err)
		assert.Empty(t, c.FindDuplicates())
	})

	t.Run("pair across releases", func(t *testing.T) {
		dir := t.TempDir()
		writeTree(t, dir, map[string]string{
			"unreleased/features/900-again.md": "- Same change\n",
			"v0.1.0/features/1-orig.md":        "- Same change\n",
			"v0.1.0/features/2-other.md":       "- Different change\n",
		})
		cfg := DefaultConfig()
		c, err := Load(cfg, dir, mapResolver{})
		require.NoError(t, err)

		dups := c.FindDuplicates()
		require.Len(t, dups, 1)
		assert.Equal(t, "unreleased/features/900-again.md",
			filepath.ToSlash(dups[0].A.RelPath(cfg)))
		assert.Equal(t, "v0.1.0/features/1-orig.md",
			filepath.ToSlash(dups[0].B.RelPath(cfg)))
	})

	t.Run("three occurrences report every pair", func(t *testing.T) {
		dir := t.TempDir()
		writeTree(t, dir, map[string]string{
			"unreleased/features/3-c.md": "- Same change\n",
			"v0.2.0/features/2-b.md":     "- Same change\n",
			"v0.1.0/features/1-a.md":     "- Same change\n",
		})
		cfg := DefaultConfig()
		c, err := Load(cfg, dir, mapResolver{})
		require.NoError(t, err)

		dups := c.FindDuplicates()
		assert.Len(t, dups, 3)
	})

	t.Run("identical content in same file position only once", func(t *testing.T) {
		// Two distinct entries in one section with the same text are still a
		// single pair.
		dir := t.TempDir()
		writeTree(t, dir, map[string]string{
			"unreleased/features/1-a.md": "- Same change\n",
			"unreleased/features/2-b.md": "- Same change\n",
		})
		cfg := DefaultConfig()
		c, err := Load(cfg, dir, mapResolver{})
		require.NoError(t, err)
		assert.Len(t, c.FindDuplicates(), 1)
	})
}
