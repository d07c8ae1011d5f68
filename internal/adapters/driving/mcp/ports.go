package mcp

import (
	"github.com/custodia-labs/issuefeed/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Feed aggregates and renders repository activity.
	Feed driving.FeedService

	// Hosts resolves host types to forge endpoints.
	Hosts driving.HostRegistry
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Feed == nil {
		return ErrMissingFeedService
	}
	if p.Hosts == nil {
		return ErrMissingHostRegistry
	}
	return nil
}
