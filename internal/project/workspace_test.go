package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGoMod(t *testing.T, dir, modulePath string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "module " + modulePath + "\n\ngo 1.25\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0o644))
}

func TestGoWorkspaceResolver(t *testing.T) {
	root := t.TempDir()
	writeGoMod(t, root, "example.com/org/project")
	writeGoMod(t, filepath.Join(root, "core"), "example.com/org/project/core")
	writeGoMod(t, filepath.Join(root, "tools", "gen"), "example.com/org/project/tools/gen")
	writeGoMod(t, filepath.Join(root, ".hidden"), "example.com/org/hidden")

	r, err := NewGoWorkspaceResolver(root)
	require.NoError(t, err)

	t.Run("root module", func(t *testing.T) {
		c, err := r.Resolve("project")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "project", c.Name)
		assert.Equal(t, "./", c.Path)
	})

	t.Run("nested module by directory name", func(t *testing.T) {
		c, err := r.Resolve("core")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "core", c.Name)
		assert.Equal(t, "./core/", c.Path)
	})

	t.Run("deeply nested module", func(t *testing.T) {
		c, err := r.Resolve("gen")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "./tools/gen/", c.Path)
	})

	t.Run("hidden directories are skipped", func(t *testing.T) {
		c, err := r.Resolve("hidden")
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("unknown id", func(t *testing.T) {
		c, err := r.Resolve("nope")
		require.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestGoWorkspaceResolverEmptyTree(t *testing.T) {
	r, err := NewGoWorkspaceResolver(t.TempDir())
	require.NoError(t, err)
	c, err := r.Resolve("anything")
	require.NoError(t, err)
	assert.Nil(t, c)
}
