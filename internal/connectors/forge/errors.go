package forge

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

// wrapError converts go-github and transport errors to domain errors.
func wrapError(err error, resource string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return statusError(ghErr.Response, ghErr.Message)
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return statusError(rateLimitErr.Response, rateLimitErr.Message)
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return statusError(abuseErr.Response, abuseErr.Message)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &domain.DecodeError{Resource: resource, Err: err}
	}

	return &domain.TransportError{Resource: resource, Err: err}
}

// statusError builds the upstream status error. An empty message, as sent
// by servers answering with a non-JSON body, becomes the status text.
func statusError(resp *http.Response, message string) error {
	code := http.StatusBadGateway
	if resp != nil {
		code = resp.StatusCode
	}
	if message == "" {
		message = http.StatusText(code)
	}
	return &domain.UpstreamStatusError{StatusCode: code, Message: message}
}
