package services

import (
	"bytes"
	"context"
	"fmt"
	"iter"

	"github.com/custodia-labs/issuefeed/internal/atom"
	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driving"
	"github.com/custodia-labs/issuefeed/internal/logger"
)

// Ensure FeedService implements the interface.
var _ driving.FeedService = (*FeedService)(nil)

// FeedService renders repository issue activity as Atom feeds.
type FeedService struct {
	aggregator *Aggregator
	version    string
}

// NewFeedService creates a feed service. version is written to the feed's
// generator element and may be empty.
func NewFeedService(aggregator *Aggregator, version string) *FeedService {
	return &FeedService{
		aggregator: aggregator,
		version:    version,
	}
}

// Updates returns the update entries of one feed page.
func (s *FeedService) Updates(ctx context.Context, req domain.FeedRequest) iter.Seq2[domain.UpdateEntry, error] {
	if err := req.Validate(); err != nil {
		return func(yield func(domain.UpdateEntry, error) bool) {
			yield(domain.UpdateEntry{}, err)
		}
	}
	return s.aggregator.Aggregate(ctx, req.Query())
}

// Render returns the Atom document of one feed page.
func (s *FeedService) Render(ctx context.Context, req domain.FeedRequest) ([]byte, error) {
	builder := atom.NewBuilder(s.metadata(req))

	for entry, err := range s.Updates(ctx, req) {
		if err != nil {
			return nil, err
		}
		builder.Add(entry)
	}
	logger.Debug("Rendering %d entries for %s (page %d)", builder.Len(), req.Repo, req.Page)

	var buf bytes.Buffer
	if err := builder.Encode(&buf, req.Pretty); err != nil {
		return nil, fmt.Errorf("render feed: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *FeedService) metadata(req domain.FeedRequest) atom.Metadata {
	meta := atom.Metadata{
		Title:     req.EffectiveTitle(),
		Subtitle:  domain.FeedSubtitle,
		ID:        "urn:uuid:" + domain.FeedID(req.Repo),
		Icon:      req.Host.IconURL(),
		Alternate: req.Host.IssuesPageURL(req.Repo),
		Self:      req.PageURL(req.Page),
		Next:      req.PageURL(req.Page + 1),
		Version:   s.version,
	}
	if req.Page > 1 {
		meta.Previous = req.PageURL(req.Page - 1)
	}
	return meta
}
