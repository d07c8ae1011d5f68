package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driven"
)

// mockTracker is a mock implementation of driven.IssueTracker.
type mockTracker struct {
	mu          sync.Mutex
	issues      []domain.RawIssue
	comments    []domain.RawComment
	issuesErr   error
	commentsErr error
	queries     []domain.UpdateQuery
}

func (m *mockTracker) ListIssues(_ context.Context, q domain.UpdateQuery) ([]domain.RawIssue, error) {
	m.record(q)
	return m.issues, m.issuesErr
}

func (m *mockTracker) ListComments(_ context.Context, q domain.UpdateQuery) ([]domain.RawComment, error) {
	m.record(q)
	return m.comments, m.commentsErr
}

func (m *mockTracker) record(q domain.UpdateQuery) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, q)
}

// mockTrackerFactory is a mock implementation of driven.TrackerFactory.
type mockTrackerFactory struct {
	tracker *mockTracker
	err     error
	hosts   []domain.HostProfile
}

func (f *mockTrackerFactory) Tracker(host domain.HostProfile) (driven.IssueTracker, error) {
	f.hosts = append(f.hosts, host)
	if f.err != nil {
		return nil, f.err
	}
	return f.tracker, nil
}
