package forge

import (
	"net/http"
	"time"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.TrackerFactory = (*Factory)(nil)

// Factory builds a fresh Client per host profile.
type Factory struct {
	timeout   time.Duration
	transport http.RoundTripper
}

// NewFactory creates a factory whose clients time out after timeout.
// A non-positive timeout uses DefaultTimeout.
func NewFactory(timeout time.Duration) *Factory {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Factory{timeout: timeout}
}

// WithTransport returns a copy of the factory whose clients use transport.
func (f *Factory) WithTransport(transport http.RoundTripper) *Factory {
	clone := *f
	clone.transport = transport
	return &clone
}

// Timeout returns the request timeout of built clients.
func (f *Factory) Timeout() time.Duration {
	return f.timeout
}

// Tracker returns a client for host.
func (f *Factory) Tracker(host domain.HostProfile) (driven.IssueTracker, error) {
	return NewClientWithHTTPClient(host, &http.Client{
		Timeout:   f.timeout,
		Transport: f.transport,
	})
}
