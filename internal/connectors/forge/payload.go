package forge

import (
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

// issuePayload is the subset of an issue object shared by the GitHub and
// Gitea APIs. gh.Issue cannot be used directly: Gitea sends
// repository.owner as a string where GitHub sends a user object.
type issuePayload struct {
	Number      int                  `json:"number"`
	Title       string               `json:"title"`
	Body        string               `json:"body"`
	User        *gh.User             `json:"user"`
	HTMLURL     string               `json:"html_url"`
	CreatedAt   *gh.Timestamp        `json:"created_at"`
	UpdatedAt   *gh.Timestamp        `json:"updated_at"`
	PullRequest *gh.PullRequestLinks `json:"pull_request"`
}

func (p *issuePayload) toRaw() domain.RawIssue {
	return domain.RawIssue{
		Number:      p.Number,
		Title:       p.Title,
		Body:        p.Body,
		Author:      p.User.GetLogin(),
		HTMLURL:     p.HTMLURL,
		CreatedAt:   timestamp(p.CreatedAt),
		UpdatedAt:   timestamp(p.UpdatedAt),
		PullRequest: p.PullRequest != nil,
	}
}

func commentToRaw(c *gh.IssueComment) domain.RawComment {
	return domain.RawComment{
		ID:        c.GetID(),
		IssueURL:  c.GetIssueURL(),
		HTMLURL:   c.GetHTMLURL(),
		Body:      c.GetBody(),
		Author:    c.GetUser().GetLogin(),
		CreatedAt: c.GetCreatedAt().Time,
		UpdatedAt: c.GetUpdatedAt().Time,
	}
}

func timestamp(ts *gh.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.Time
}
