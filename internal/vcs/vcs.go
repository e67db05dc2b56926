// Package vcs infers project hosting details from the local Git repository.
// It uses the go-git library to read the origin remote and classifies the
// hosting platform so that entry templates can link to the right issue or
// pull request URL scheme.
package vcs

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Platform identifies a known Git hosting platform. The platform decides the
// URL scheme for issues and pull/merge requests.
type Platform string

const (
	GitHub  Platform = "github"
	GitLab  Platform = "gitlab"
	Unknown Platform = "unknown"
)

// ChangeKind distinguishes the two linkable change types.
type ChangeKind int

const (
	Issue ChangeKind = iota
	PullRequest
)

// Project is a hosted project inferred from a remote URL.
type Project struct {
	// URL is the project's web page, without a trailing slash or .git suffix.
	URL string
	// Platform is the detected hosting platform.
	Platform Platform
}

// FromDir opens the Git repository containing dir and infers the project
// from its origin remote. The search walks up the directory tree to find the
// repository root.
func FromDir(dir string) (*Project, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, fmt.Errorf("reading origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, fmt.Errorf("origin remote has no URL")
	}
	slog.Debug("detected origin remote", "url", urls[0])
	return FromURL(urls[0])
}

// FromURL parses a remote URL in either SSH (git@host:org/repo.git) or HTTP
// form and returns the hosted project.
func FromURL(raw string) (*Project, error) {
	webURL, host, err := normalizeRemote(raw)
	if err != nil {
		return nil, err
	}
	return &Project{URL: webURL, Platform: classifyHost(host)}, nil
}

// ChangeURL returns the web URL of the given issue or pull request number.
func (p *Project) ChangeURL(kind ChangeKind, number int) string {
	switch p.Platform {
	case GitLab:
		if kind == PullRequest {
			return fmt.Sprintf("%s/-/merge_requests/%d", p.URL, number)
		}
		return fmt.Sprintf("%s/-/issues/%d", p.URL, number)
	default:
		// GitHub's scheme doubles as the fallback for unknown hosts.
		if kind == PullRequest {
			return fmt.Sprintf("%s/pull/%d", p.URL, number)
		}
		return fmt.Sprintf("%s/issues/%d", p.URL, number)
	}
}

// normalizeRemote converts a remote URL to its https web form and returns the
// host for platform classification.
func normalizeRemote(raw string) (webURL, host string, err error) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "/")

	// SSH shorthand: git@host:org/repo.git
	if at := strings.Index(raw, "@"); at >= 0 && !strings.Contains(raw, "://") {
		rest := raw[at+1:]
		colon := strings.Index(rest, ":")
		if colon < 0 {
			return "", "", fmt.Errorf("unrecognized remote URL: %s", raw)
		}
		host = rest[:colon]
		repoPath := strings.TrimSuffix(rest[colon+1:], ".git")
		return fmt.Sprintf("https://%s/%s", host, repoPath), host, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parsing remote URL %s: %w", raw, err)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("unrecognized remote URL: %s", raw)
	}
	repoPath := strings.TrimSuffix(strings.TrimPrefix(u.Path, "/"), ".git")
	return fmt.Sprintf("https://%s/%s", u.Host, repoPath), u.Host, nil
}

// classifyHost maps a host name to its platform.
func classifyHost(host string) Platform {
	switch {
	case host == "github.com" || strings.HasSuffix(host, ".github.com"):
		return GitHub
	case host == "gitlab.com" || strings.HasPrefix(host, "gitlab."):
		return GitLab
	default:
		return Unknown
	}
}
