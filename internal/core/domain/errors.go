package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingService indicates a required service was not wired.
	ErrMissingService = errors.New("service not configured")
)

// UpstreamStatusError reports a non-success response from the forge API.
// It is surfaced to the caller with the upstream status code.
type UpstreamStatusError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamStatusError) Error() string {
	return "From server: " + e.Message
}

// DecodeError reports an upstream payload that is not valid JSON.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError reports a failed upstream call that produced no response,
// such as a refused connection or a timeout.
type TransportError struct {
	Resource string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.Resource, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MissingParameterError reports required request parameters that are absent.
type MissingParameterError struct {
	Names []string
}

func (e *MissingParameterError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, " or ") + " query parameter is missing."
}

// IsUpstreamStatus reports whether err carries an upstream status and
// returns it.
func IsUpstreamStatus(err error) (*UpstreamStatusError, bool) {
	var statusErr *UpstreamStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsDecode reports whether err is a DecodeError.
func IsDecode(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsMissingParameter reports whether err is a MissingParameterError.
func IsMissingParameter(err error) bool {
	var missingErr *MissingParameterError
	return errors.As(err, &missingErr)
}
