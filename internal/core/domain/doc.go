// Package domain defines the core business entities for issuefeed.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - UpdateEntry: one feed item, an issue or a comment
//   - RawIssue, RawComment: decoded upstream records from a forge
//   - HostProfile: API and web endpoints of one forge
//   - FeedRequest: everything needed to render one page of a feed
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/google/uuid
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
