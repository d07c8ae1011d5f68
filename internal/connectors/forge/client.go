package forge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driven"
	"github.com/custodia-labs/issuefeed/internal/logger"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Resource names used in errors and logs.
const (
	resourceIssues   = "issues"
	resourceComments = "comments"
)

// Ensure Client implements the interface.
var _ driven.IssueTracker = (*Client)(nil)

// Client talks to the issue API of one forge.
type Client struct {
	gh   *gh.Client
	host domain.HostProfile
}

// NewClient creates a client for host with the given request timeout.
func NewClient(host domain.HostProfile, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewClientWithHTTPClient(host, &http.Client{Timeout: timeout})
}

// NewClientWithHTTPClient creates a client for host using httpClient.
func NewClientWithHTTPClient(host domain.HostProfile, httpClient *http.Client) (*Client, error) {
	if err := host.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(host.APIBaseURL())
	if err != nil {
		return nil, fmt.Errorf("%w: api host %q: %v", domain.ErrInvalidInput, host.APIHost, err)
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = baseURL
	client.UserAgent = "issuefeed"

	return &Client{gh: client, host: host}, nil
}

// Host returns the host profile the client serves.
func (c *Client) Host() domain.HostProfile {
	return c.host
}

// ListIssues returns one page of issues updated since q.Since.
func (c *Client) ListIssues(ctx context.Context, q domain.UpdateQuery) ([]domain.RawIssue, error) {
	var payload []*issuePayload
	if err := c.get(ctx, resourceIssues, c.host.IssuesURLPath(q.Repo), q, &payload); err != nil {
		return nil, err
	}

	issues := make([]domain.RawIssue, 0, len(payload))
	for _, p := range payload {
		if p == nil {
			continue
		}
		issues = append(issues, p.toRaw())
	}
	return issues, nil
}

// ListComments returns one page of comments updated since q.Since.
func (c *Client) ListComments(ctx context.Context, q domain.UpdateQuery) ([]domain.RawComment, error) {
	var payload []*gh.IssueComment
	if err := c.get(ctx, resourceComments, c.host.CommentsURLPath(q.Repo), q, &payload); err != nil {
		return nil, err
	}

	comments := make([]domain.RawComment, 0, len(payload))
	for _, p := range payload {
		if p == nil {
			continue
		}
		comments = append(comments, commentToRaw(p))
	}
	return comments, nil
}

// get fetches a collection path into v.
func (c *Client) get(ctx context.Context, resource, path string, q domain.UpdateQuery, v any) error {
	// Paths are relative to the API base so prefixes such as /api/v3
	// on the API host are kept.
	urlStr := strings.TrimPrefix(path, "/") + "?" + c.query(q).Encode()

	req, err := c.gh.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return &domain.TransportError{Resource: resource, Err: err}
	}

	logger.Debug("GET %s", req.URL)
	start := time.Now()

	resp, err := c.gh.Do(ctx, req, v)
	if err != nil {
		return wrapError(err, resource)
	}

	logger.Debug("GET %s: %d in %s", req.URL, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	return nil
}

// query returns the since, page and page size parameters.
func (c *Client) query(q domain.UpdateQuery) url.Values {
	values := url.Values{}
	values.Set("since", q.Since.UTC().Format(time.RFC3339))
	values.Set("page", strconv.Itoa(q.Page))
	values.Set(c.host.Family.Capabilities().PerPageKey, strconv.Itoa(q.Limit))
	return values
}
