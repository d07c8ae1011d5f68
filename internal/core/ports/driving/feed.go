package driving

import (
	"context"
	"iter"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

// FeedService turns forge issue activity into feeds.
type FeedService interface {
	// Updates returns the update entries of one feed page.
	// The sequence ends early with a non-nil error if aggregation fails.
	Updates(ctx context.Context, req domain.FeedRequest) iter.Seq2[domain.UpdateEntry, error]

	// Render returns the Atom document of one feed page.
	// No document is returned when aggregation fails.
	Render(ctx context.Context, req domain.FeedRequest) ([]byte, error)
}
