package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Feed defaults.
const (
	DefaultPage        = 1
	DefaultLimit       = 50
	MaxLimit           = 100
	DefaultSinceWindow = 48 * time.Hour
	FeedSubtitle       = "Feed of latest issues and comments for Git repositories."
)

// Query parameter names understood by the feed endpoint.
const (
	ParamRepo        = "repo"
	ParamHostType    = "host_type"
	ParamSince       = "since"
	ParamAPIHost     = "api_host"
	ParamGitHost     = "git_host"
	ParamAPIIssues   = "api_issues"
	ParamAPIComments = "api_comments"
	ParamTitle       = "title"
	ParamPretty      = "pretty"
	ParamPage        = "page"
	ParamLimit       = "limit"
)

// DefaultTitle returns the feed title used when none is requested.
func DefaultTitle(repo string) string {
	return repo + " issue updates"
}

// FeedRequest describes one page of a repository feed.
type FeedRequest struct {
	Repo     string
	HostType string
	Host     HostProfile
	Since    time.Time
	Title    string
	Pretty   bool
	Page     int
	Limit    int

	// Endpoint is the URL of the feed without query, used for
	// self, previous and next links. Empty yields query-only links.
	Endpoint string
}

// EffectiveTitle returns the requested title or the default one.
func (r FeedRequest) EffectiveTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return DefaultTitle(r.Repo)
}

// Query returns the aggregator input of the request.
func (r FeedRequest) Query() UpdateQuery {
	return UpdateQuery{
		Repo:  r.Repo,
		Since: r.Since,
		Host:  r.Host,
		Page:  r.Page,
		Limit: r.Limit,
	}
}

// LinkQuery returns the query parameters reproducing this request on page.
func (r FeedRequest) LinkQuery(page int) url.Values {
	pretty := "0"
	if r.Pretty {
		pretty = "1"
	}
	return url.Values{
		ParamRepo:        {r.Repo},
		ParamSince:       {FormatTimestamp(r.Since)},
		ParamHostType:    {r.HostType},
		ParamAPIHost:     {r.Host.APIHost},
		ParamGitHost:     {r.Host.GitHost},
		ParamAPIIssues:   {r.Host.IssuesPath},
		ParamAPIComments: {r.Host.CommentsPath},
		ParamPretty:      {pretty},
		ParamTitle:       {r.EffectiveTitle()},
		ParamPage:        {strconv.Itoa(page)},
		ParamLimit:       {strconv.Itoa(r.Limit)},
	}
}

// PageURL returns the feed URL of page. Without an endpoint it is a
// query-only reference relative to wherever the feed is served from.
func (r FeedRequest) PageURL(page int) string {
	return r.Endpoint + "?" + r.LinkQuery(page).Encode()
}

// Validate checks the request fields the aggregator relies on.
func (r FeedRequest) Validate() error {
	if r.Repo == "" {
		return &MissingParameterError{Names: []string{ParamRepo, ParamHostType}}
	}
	if r.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if r.Limit < 1 || r.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxLimit)
	}
	return r.Host.Validate()
}

// FeedParams are the caller-facing inputs of a feed request before the
// host is resolved and the since value is parsed.
type FeedParams struct {
	Repo      string
	HostType  string
	Since     string
	Title     string
	Pretty    bool
	Page      int
	Limit     int
	Overrides HostOverrides
	Endpoint  string
}
