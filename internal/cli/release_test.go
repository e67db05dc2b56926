package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/errors"
)

func runRelease(t *testing.T, version string) error {
	t.Helper()
	var buf bytes.Buffer
	releaseCmd.SetOut(&buf)
	defer releaseCmd.SetOut(nil)
	return releaseCmd.RunE(releaseCmd, []string{version})
}

func TestReleaseCmd(t *testing.T) {
	t.Run("moves unreleased entries", func(t *testing.T) {
		dir := t.TempDir()
		entry := filepath.Join(dir, "unreleased", "features", "900-x.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(entry), 0o755))
		require.NoError(t, os.WriteFile(entry, []byte("- X\n"), 0o644))
		withChangelogDir(t, dir)

		require.NoError(t, runRelease(t, "v0.2.0"))
		assert.FileExists(t, filepath.Join(dir, "v0.2.0", "features", "900-x.md"))
		assert.DirExists(t, filepath.Join(dir, "unreleased"))
	})

	t.Run("invalid version", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "unreleased"), 0o755))
		withChangelogDir(t, dir)

		err := runRelease(t, "not-a-version")
		require.Error(t, err)
		cliErr := errors.AsCLIError(err)
		require.NotNil(t, cliErr)
		assert.Equal(t, errors.Argument, cliErr.Category)
	})

	t.Run("nothing to release", func(t *testing.T) {
		withChangelogDir(t, t.TempDir())

		err := runRelease(t, "v0.2.0")
		require.Error(t, err)
		cliErr := errors.AsCLIError(err)
		require.NotNil(t, cliErr)
		assert.Equal(t, errors.Input, cliErr.Category)
	})

	t.Run("release already exists", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "unreleased"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "v0.2.0"), 0o755))
		withChangelogDir(t, dir)

		err := runRelease(t, "v0.2.0")
		require.Error(t, err)
		cliErr := errors.AsCLIError(err)
		require.NotNil(t, cliErr)
		assert.Equal(t, errors.Input, cliErr.Category)
	})
}
