package cli

import (
	"bytes"
	"context"
	"iter"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/issuefeed/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/services"
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
	return func(func(domain.UpdateEntry, error) bool) {}
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

func (m *mockFeedService) last() domain.FeedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return domain.FeedRequest{}
	}
	return m.requests[len(m.requests)-1]
}

// testServices holds the injected services of a test.
type testServices struct {
	feed   *mockFeedService
	config *memory.ConfigStore
}

// setupTestServices injects mocks into the package service variables and
// returns a function restoring the previous ones.
func setupTestServices() (*testServices, func()) {
	origConfig, origFeed, origHosts := configStore, feedService, hostRegistry

	ts := &testServices{
		feed:   &mockFeedService{body: []byte("<feed/>\n")},
		config: memory.NewConfigStore(),
	}
	configStore = ts.config
	feedService = ts.feed
	hostRegistry = services.NewHostRegistry(ts.config)

	return ts, func() {
		configStore, feedService, hostRegistry = origConfig, origFeed, origHosts
	}
}

// executeCommand runs rootCmd with args and fresh flag values, returning
// everything written to stdout and stderr.
func executeCommand(args ...string) (string, error) {
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
