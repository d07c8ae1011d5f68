package mcp

import (
	"context"
	"iter"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

// mockFeedService is a mock implementation of driving.FeedService.
type mockFeedService struct {
	entries []domain.UpdateEntry
	body    []byte
	err     error
	last    domain.FeedRequest
}

func (m *mockFeedService) Updates(_ context.Context, req domain.FeedRequest) iter.Seq2[domain.UpdateEntry, error] {
	m.last = req
	return func(yield func(domain.UpdateEntry, error) bool) {
		if m.err != nil {
			yield(domain.UpdateEntry{}, m.err)
			return
		}
		for _, e := range m.entries {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (m *mockFeedService) Render(_ context.Context, req domain.FeedRequest) ([]byte, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return m.body, nil
}

// mockHostRegistry is a mock implementation of driving.HostRegistry.
type mockHostRegistry struct {
	profiles []domain.HostProfile
	err      error
}

func (m *mockHostRegistry) Profiles() []domain.HostProfile {
	return m.profiles
}

func (m *mockHostRegistry) Resolve(hostType string, overrides domain.HostOverrides) (domain.HostProfile, error) {
	if m.err != nil {
		return domain.HostProfile{}, m.err
	}
	for _, p := range m.profiles {
		if p.Name == hostType {
			return overrides.Apply(p), nil
		}
	}
	return domain.DefaultHostProfiles()[domain.HostTypeGitHub], nil
}

func newMockHosts() *mockHostRegistry {
	defaults := domain.DefaultHostProfiles()
	return &mockHostRegistry{
		profiles: []domain.HostProfile{
			defaults[domain.HostTypeGitea],
			defaults[domain.HostTypeGitHub],
		},
	}
}
