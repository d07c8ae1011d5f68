package driven

import (
	"context"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

// IssueTracker reads issue activity from one forge.
// Implementations return *domain.UpstreamStatusError for non-success
// responses, *domain.DecodeError for malformed payloads and
// *domain.TransportError when no response was received.
type IssueTracker interface {
	// ListIssues returns one page of issues updated since q.Since,
	// in upstream order.
	ListIssues(ctx context.Context, q domain.UpdateQuery) ([]domain.RawIssue, error)

	// ListComments returns one page of issue comments updated since
	// q.Since, in upstream order.
	ListComments(ctx context.Context, q domain.UpdateQuery) ([]domain.RawComment, error)
}

// TrackerFactory creates an IssueTracker for a host profile.
// Each call returns an independent tracker.
type TrackerFactory interface {
	Tracker(host domain.HostProfile) (IssueTracker, error)
}
