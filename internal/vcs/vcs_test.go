package vcs

import (
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromURL(t *testing.T) {
	tests := map[string]struct {
		raw          string
		wantURL      string
		wantPlatform Platform
		wantErr      bool
	}{
		"github https": {
			raw:          "https://github.com/org/project.git",
			wantURL:      "https://github.com/org/project",
			wantPlatform: GitHub,
		},
		"github ssh": {
			raw:          "git@github.com:org/project.git",
			wantURL:      "https://github.com/org/project",
			wantPlatform: GitHub,
		},
		"gitlab https": {
			raw:          "https://gitlab.com/org/project.git",
			wantURL:      "https://gitlab.com/org/project",
			wantPlatform: GitLab,
		},
		"self-hosted gitlab": {
			raw:          "git@gitlab.example.com:org/project.git",
			wantURL:      "https://gitlab.example.com/org/project",
			wantPlatform: GitLab,
		},
		"unknown host": {
			raw:          "https://git.example.com/org/project",
			wantURL:      "https://git.example.com/org/project",
			wantPlatform: Unknown,
		},
		"ssh scheme with user": {
			raw:          "ssh://git@github.com/org/project.git",
			wantURL:      "https://github.com/org/project",
			wantPlatform: GitHub,
		},
		"no host": {
			raw:     "/local/path/project",
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := FromURL(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantURL, p.URL)
			assert.Equal(t, tc.wantPlatform, p.Platform)
		})
	}
}

func TestChangeURL(t *testing.T) {
	t.Run("github", func(t *testing.T) {
		p := &Project{URL: "https://github.com/org/project", Platform: GitHub}
		assert.Equal(t, "https://github.com/org/project/issues/123", p.ChangeURL(Issue, 123))
		assert.Equal(t, "https://github.com/org/project/pull/123", p.ChangeURL(PullRequest, 123))
	})

	t.Run("gitlab", func(t *testing.T) {
		p := &Project{URL: "https://gitlab.com/org/project", Platform: GitLab}
		assert.Equal(t, "https://gitlab.com/org/project/-/issues/42", p.ChangeURL(Issue, 42))
		assert.Equal(t, "https://gitlab.com/org/project/-/merge_requests/42", p.ChangeURL(PullRequest, 42))
	})

	t.Run("unknown host uses github scheme", func(t *testing.T) {
		p := &Project{URL: "https://git.example.com/org/project", Platform: Unknown}
		assert.Equal(t, "https://git.example.com/org/project/issues/7", p.ChangeURL(Issue, 7))
	})
}

func TestFromDir(t *testing.T) {
	t.Run("repository with origin", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:org/project.git"},
		})
		require.NoError(t, err)

		p, err := FromDir(dir)
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/org/project", p.URL)
		assert.Equal(t, GitHub, p.Platform)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := FromDir(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("repository without origin", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		_, err = FromDir(dir)
		assert.Error(t, err)
	})
}
