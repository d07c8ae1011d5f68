// Package mcp provides an MCP (Model Context Protocol) server adapter for issuefeed.
// It lets AI assistants read the issue and comment activity of a repository.
package mcp

import "errors"

// ErrMissingFeedService is returned when the feed service is not provided.
var ErrMissingFeedService = errors.New("mcp: feed service is required")

// ErrMissingHostRegistry is returned when the host registry is not provided.
var ErrMissingHostRegistry = errors.New("mcp: host registry is required")
