package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/services"
)

// FeedInput is the input schema shared by the feed tools.
type FeedInput struct {
	Repo     string `json:"repo" jsonschema:"repository path as owner/name"`
	HostType string `json:"host_type" jsonschema:"host type such as github, gitea or forgejo"`
	Since    string `json:"since,omitempty" jsonschema:"ISO-8601 timestamp; only activity updated after it is returned (default 48 hours ago)"`
	Page     int    `json:"page,omitempty" jsonschema:"page number starting at 1 (default 1)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"items per page and resource, at most 100 (default 50)"`
	Title    string `json:"title,omitempty" jsonschema:"feed title (issue_feed only)"`
}

// UpdatesOutput is the output schema for the issue_updates tool.
type UpdatesOutput struct {
	Entries []EntryOutput `json:"entries"`
	Count   int           `json:"count"`
}

// EntryOutput represents a single issue or comment update.
type EntryOutput struct {
	Kind      string `json:"kind"`
	ID        string `json:"id"`
	Link      string `json:"link"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Published string `json:"published"`
	Updated   string `json:"updated"`
	Content   string `json:"content,omitempty"`
}

// FeedOutput is the output schema for the issue_feed tool.
type FeedOutput struct {
	Feed string `json:"feed"`
}

// Tool descriptions.
const (
	issueUpdatesDescription = "List recently updated issues and comments of a repository. " +
		"Entries follow the upstream issue order, each issue followed by its new comments, " +
		"then comments on older issues."
	issueFeedDescription = "Render recently updated issues and comments of a repository as an Atom feed"
)

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "issue_updates",
		Description: issueUpdatesDescription,
	}, s.handleIssueUpdates)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "issue_feed",
		Description: issueFeedDescription,
	}, s.handleIssueFeed)
}

// handleIssueUpdates handles the issue_updates tool invocation.
func (s *Server) handleIssueUpdates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FeedInput,
) (*mcp.CallToolResult, UpdatesOutput, error) {
	req, err := s.feedRequest(input)
	if err != nil {
		return nil, UpdatesOutput{}, err
	}

	output := UpdatesOutput{Entries: make([]EntryOutput, 0)}
	for entry, err := range s.ports.Feed.Updates(ctx, req) {
		if err != nil {
			return nil, UpdatesOutput{}, fmt.Errorf("fetching updates: %w", err)
		}
		output.Entries = append(output.Entries, EntryOutput{
			Kind:      entry.Kind.String(),
			ID:        entry.URN(),
			Link:      entry.Link,
			Title:     entry.Title,
			Author:    entry.Author,
			Published: domain.FormatTimestamp(entry.Published),
			Updated:   domain.FormatTimestamp(entry.Updated),
			Content:   entry.Content,
		})
	}
	output.Count = len(output.Entries)

	return nil, output, nil
}

// handleIssueFeed handles the issue_feed tool invocation.
func (s *Server) handleIssueFeed(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FeedInput,
) (*mcp.CallToolResult, FeedOutput, error) {
	req, err := s.feedRequest(input)
	if err != nil {
		return nil, FeedOutput{}, err
	}
	req.Pretty = true

	body, err := s.ports.Feed.Render(ctx, req)
	if err != nil {
		return nil, FeedOutput{}, fmt.Errorf("rendering feed: %w", err)
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
	}
	return result, FeedOutput{Feed: string(body)}, nil
}

func (s *Server) feedRequest(input FeedInput) (domain.FeedRequest, error) {
	page := input.Page
	if page == 0 {
		page = domain.DefaultPage
	}
	limit := input.Limit
	if limit == 0 {
		limit = domain.DefaultLimit
	}

	return services.BuildFeedRequest(s.ports.Hosts, domain.FeedParams{
		Repo:     input.Repo,
		HostType: input.HostType,
		Since:    input.Since,
		Title:    input.Title,
		Page:     page,
		Limit:    limit,
	}, s.now())
}
