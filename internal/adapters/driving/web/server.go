package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/issuefeed/internal/atom"
	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driving"
	"github.com/custodia-labs/issuefeed/internal/logger"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = ":8000"

	// ReadHeaderTimeout bounds the time to read request headers.
	ReadHeaderTimeout = 10 * time.Second

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout = 10 * time.Second
)

// Server is the HTTP feed endpoint.
type Server struct {
	feed    driving.FeedService
	hosts   driving.HostRegistry
	limiter *rate.Limiter
	now     func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit throttles inbound requests to r per second with the given
// burst. A non-positive r disables throttling.
func WithRateLimit(r float64, burst int) Option {
	return func(s *Server) {
		if r <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(r), burst)
	}
}

// WithClock replaces the clock used for the default since value.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates a feed server.
func NewServer(feed driving.FeedService, hosts driving.HostRegistry, opts ...Option) *Server {
	s := &Server{
		feed:  feed,
		hosts: hosts,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServeHTTP handles one feed request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, http.StatusMethodNotAllowed, msgMethod)
		return
	}

	if s.limiter != nil && !s.limiter.Allow() {
		logger.Warn("Rate limited %s %s", r.RemoteAddr, r.URL.RequestURI())
		writeError(w, http.StatusTooManyRequests, msgRateLimited)
		return
	}

	if s.feed == nil {
		s.fail(w, r, fmt.Errorf("feed service: %w", domain.ErrMissingService))
		return
	}

	req, err := parseRequest(r, s.hosts, s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	body, err := s.feed.Render(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", atom.ContentType)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(body)
	}
	logger.Info("%s %s 200 %d bytes in %s", r.Method, r.URL.RequestURI(), len(body), time.Since(start).Round(time.Millisecond))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code, message := statusFor(err)
	if code >= http.StatusInternalServerError {
		logger.Error("%s %s: %v", r.Method, r.URL.RequestURI(), err)
	} else {
		logger.Info("%s %s %d: %v", r.Method, r.URL.RequestURI(), code, err)
	}
	writeError(w, code, message)
}

// Run listens on addr and serves until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is done.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Serving feeds on %s", listener.Addr())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errChan
}
