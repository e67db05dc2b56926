package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFindDuplicates(t *testing.T) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	findDuplicatesCmd.SetOut(&buf)
	defer findDuplicatesCmd.SetOut(nil)
	err := findDuplicatesCmd.RunE(findDuplicatesCmd, nil)
	return buf.String(), err
}

func TestFindDuplicatesCmd(t *testing.T) {
	writeEntry := func(t *testing.T, dir, rel, content string) {
		t.Helper()
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	t.Run("reports matching pair", func(t *testing.T) {
		dir := t.TempDir()
		writeEntry(t, dir, "unreleased/features/900-x.md", "- Same change\n")
		writeEntry(t, dir, "v0.1.0/features/1-x.md", "- Same change\n")
		withChangelogDir(t, dir)

		out, err := runFindDuplicates(t)
		require.NoError(t, err)
		assert.Contains(t, out, "duplicates")
		assert.Contains(t, out, filepath.Join("unreleased", "features", "900-x.md"))
		assert.Contains(t, out, filepath.Join("v0.1.0", "features", "1-x.md"))
	})

	t.Run("no duplicates", func(t *testing.T) {
		dir := t.TempDir()
		writeEntry(t, dir, "unreleased/features/900-x.md", "- One change\n")
		writeEntry(t, dir, "v0.1.0/features/1-x.md", "- Another change\n")
		withChangelogDir(t, dir)

		out, err := runFindDuplicates(t)
		require.NoError(t, err)
		assert.Contains(t, out, "No duplicate entries found")
	})
}
