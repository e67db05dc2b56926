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

// resetAddFlags restores add flag defaults after a test.
func resetAddFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		addSection = ""
		addComponent = ""
		addID = ""
		addMessage = ""
		addIssueNo = 0
		addPullRequest = 0
		addProjectURL = ""
	})
}

func runAddCmd(t *testing.T) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	addCmd.SetOut(&buf)
	defer addCmd.SetOut(nil)
	err := addCmd.RunE(addCmd, nil)
	return buf.String(), err
}

func TestAddCmd_WritesTemplatedEntry(t *testing.T) {
	withChangelogDir(t, t.TempDir())
	resetAddFlags(t)
	addSection = "bug-fixes"
	addIssueNo = 123
	addMessage = "Fixed the thing"
	addProjectURL = "https://github.com/org/project"

	out, err := runAddCmd(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Added")

	entry := filepath.Join(flagPath, "unreleased", "bug-fixes", "123-fixed-the-thing.md")
	content, err := os.ReadFile(entry)
	require.NoError(t, err)
	assert.Equal(t,
		`- Fixed the thing ([\#123](https://github.com/org/project/issues/123))`+"\n",
		string(content))
}

func TestAddCmd_PullRequestURL(t *testing.T) {
	withChangelogDir(t, t.TempDir())
	resetAddFlags(t)
	addSection = "features"
	addPullRequest = 456
	addMessage = "Added the thing"
	addProjectURL = "https://gitlab.com/org/project"

	_, err := runAddCmd(t)
	require.NoError(t, err)

	entry := filepath.Join(flagPath, "unreleased", "features", "456-added-the-thing.md")
	content, err := os.ReadFile(entry)
	require.NoError(t, err)
	assert.Contains(t, string(content), "https://gitlab.com/org/project/-/merge_requests/456")
}

func TestAddCmd_ExplicitID(t *testing.T) {
	withChangelogDir(t, t.TempDir())
	resetAddFlags(t)
	addSection = "features"
	addID = "999-custom-name"
	addIssueNo = 999
	addMessage = "Whatever"
	addProjectURL = "https://github.com/org/project"

	_, err := runAddCmd(t)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(flagPath, "unreleased", "features", "999-custom-name.md"))
}

func TestAddCmd_MissingMessage(t *testing.T) {
	withChangelogDir(t, t.TempDir())
	resetAddFlags(t)
	addSection = "features"
	addIssueNo = 1

	_, err := runAddCmd(t)
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Argument, cliErr.Category)
}

func TestAddCmd_MissingChangeNumber(t *testing.T) {
	withChangelogDir(t, t.TempDir())
	resetAddFlags(t)
	addSection = "features"
	addMessage = "No number"

	_, err := runAddCmd(t)
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Argument, cliErr.Category)
}

func TestAddCmd_NoProjectURL(t *testing.T) {
	// No flag, no config, and the temp dir is outside any git repository.
	withChangelogDir(t, t.TempDir())
	resetAddFlags(t)
	addSection = "features"
	addIssueNo = 5
	addMessage = "Orphan"

	_, err := runAddCmd(t)
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Configuration, cliErr.Category)
}

func TestSlugify(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"simple":          {in: "Fixed the thing", want: "fixed-the-thing"},
		"punctuation":     {in: "Fix: crash on load!", want: "fix-crash-on-load"},
		"truncated":       {in: "one two three four five six seven", want: "one-two-three-four-five"},
		"leading garbage": {in: "  --- Weird input", want: "weird-input"},
		"already a slug":  {in: "fixed-the-thing", want: "fixed-the-thing"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, slugify(tc.in))
		})
	}
}
