// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - Aggregator: correlates forge issues and comments into update entries
//   - FeedService: renders aggregated entries as an Atom feed
//   - HostRegistry: resolves host types to forge endpoints
package services
