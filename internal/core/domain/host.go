package domain

import (
	"fmt"
	"strings"
)

// HostFamily identifies the API dialect a forge speaks.
type HostFamily string

const (
	// FamilyGitHub covers api.github.com and GitHub Enterprise.
	FamilyGitHub HostFamily = "github"
	// FamilyGitea covers Gitea and Forgejo (Codeberg) instances.
	FamilyGitea HostFamily = "gitea"
)

// FamilyCapabilities describes how a host family spells its API options.
type FamilyCapabilities struct {
	// PerPageKey is the query parameter holding the page size.
	PerPageKey string
}

var familyCapabilities = map[HostFamily]FamilyCapabilities{
	FamilyGitHub: {PerPageKey: "per_page"},
	FamilyGitea:  {PerPageKey: "limit"},
}

// IsValid returns true if the family is recognised.
func (f HostFamily) IsValid() bool {
	_, ok := familyCapabilities[f]
	return ok
}

// Capabilities returns the capability table row of the family.
// Unknown families get the GitHub row.
func (f HostFamily) Capabilities() FamilyCapabilities {
	if c, ok := familyCapabilities[f]; ok {
		return c
	}
	return familyCapabilities[FamilyGitHub]
}

// String returns the string representation.
func (f HostFamily) String() string {
	return string(f)
}

// Host types shipped with issuefeed.
const (
	HostTypeGitHub  = "github"
	HostTypeGitea   = "gitea"
	HostTypeForgejo = "forgejo"
)

// HostProfile holds the endpoints of one forge.
// IssuesPath and CommentsPath are templates where {repo} is replaced by
// the "owner/name" repository path.
type HostProfile struct {
	Name         string
	Family       HostFamily
	APIHost      string
	GitHost      string
	IssuesPath   string
	CommentsPath string
}

// DefaultHostProfiles returns the built-in host types keyed by name.
func DefaultHostProfiles() map[string]HostProfile {
	return map[string]HostProfile{
		HostTypeGitHub: {
			Name:         HostTypeGitHub,
			Family:       FamilyGitHub,
			APIHost:      "api.github.com",
			GitHost:      "github.com",
			IssuesPath:   "/repos/{repo}/issues",
			CommentsPath: "/repos/{repo}/issues/comments",
		},
		HostTypeGitea: {
			Name:         HostTypeGitea,
			Family:       FamilyGitea,
			APIHost:      "gitea.com",
			GitHost:      "gitea.com",
			IssuesPath:   "/api/v1/repos/{repo}/issues",
			CommentsPath: "/api/v1/repos/{repo}/issues/comments",
		},
		HostTypeForgejo: {
			Name:         HostTypeForgejo,
			Family:       FamilyGitea,
			APIHost:      "codeberg.org",
			GitHost:      "codeberg.org",
			IssuesPath:   "/api/v1/repos/{repo}/issues",
			CommentsPath: "/api/v1/repos/{repo}/issues/comments",
		},
	}
}

// HostOverrides replaces individual fields of a HostProfile.
// Empty fields leave the profile untouched.
type HostOverrides struct {
	APIHost      string
	GitHost      string
	IssuesPath   string
	CommentsPath string
}

// Apply returns a copy of p with the non-empty overrides applied.
func (o HostOverrides) Apply(p HostProfile) HostProfile {
	if o.APIHost != "" {
		p.APIHost = o.APIHost
	}
	if o.GitHost != "" {
		p.GitHost = o.GitHost
	}
	if o.IssuesPath != "" {
		p.IssuesPath = o.IssuesPath
	}
	if o.CommentsPath != "" {
		p.CommentsPath = o.CommentsPath
	}
	return p
}

// Validate checks that all endpoints are present.
func (p HostProfile) Validate() error {
	switch {
	case p.APIHost == "":
		return fmt.Errorf("%w: host %q: api host is required", ErrInvalidInput, p.Name)
	case p.GitHost == "":
		return fmt.Errorf("%w: host %q: git host is required", ErrInvalidInput, p.Name)
	case p.IssuesPath == "":
		return fmt.Errorf("%w: host %q: issues path is required", ErrInvalidInput, p.Name)
	case p.CommentsPath == "":
		return fmt.Errorf("%w: host %q: comments path is required", ErrInvalidInput, p.Name)
	}
	return nil
}

// IssuesURLPath returns the issues collection path for repo.
func (p HostProfile) IssuesURLPath(repo string) string {
	return expandRepo(p.IssuesPath, repo)
}

// CommentsURLPath returns the comments collection path for repo.
func (p HostProfile) CommentsURLPath(repo string) string {
	return expandRepo(p.CommentsPath, repo)
}

// APIBaseURL returns the API root with a trailing slash.
func (p HostProfile) APIBaseURL() string {
	return withScheme(p.APIHost) + "/"
}

// IssuesPageURL returns the human-facing issue list of repo.
func (p HostProfile) IssuesPageURL(repo string) string {
	return withScheme(p.GitHost) + "/" + repo + "/issues"
}

// IconURL returns the forge favicon.
func (p HostProfile) IconURL() string {
	return withScheme(p.GitHost) + "/favicon.ico"
}

// expandRepo fills a path template. "{0}" is accepted for links built by
// older deployments.
func expandRepo(template, repo string) string {
	return strings.NewReplacer("{repo}", repo, "{0}", repo).Replace(template)
}

func withScheme(host string) string {
	host = strings.TrimRight(host, "/")
	if strings.Contains(host, "://") {
		return host
	}
	return "https://" + host
}
