package web

import (
	"context"
	"iter"
	"sync"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

// mockFeedService is a mock implementation of driving.FeedService.
type mockFeedService struct {
	mu       sync.Mutex
	body     []byte
	err      error
	requests []domain.FeedRequest
}

func (m *mockFeedService) Updates(_ context.Context, req domain.FeedRequest) iter.Seq2[domain.UpdateEntry, error] {
	m.record(req)
	return func(yield func(domain.UpdateEntry, error) bool) {
		if m.err != nil {
			yield(domain.UpdateEntry{}, m.err)
		}
	}
}

func (m *mockFeedService) Render(_ context.Context, req domain.FeedRequest) ([]byte, error) {
	m.record(req)
	if m.err != nil {
		return nil, m.err
	}
	return m.body, nil
}

func (m *mockFeedService) record(req domain.FeedRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
}

func (m *mockFeedService) last() (domain.FeedRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return domain.FeedRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}
