package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

// Fixed messages of errors whose details are only logged.
const (
	msgDecode      = "Can't decode JSON."
	msgTransport   = "Upstream request failed."
	msgInternal    = "Internal server error."
	msgRateLimited = "Too many requests."
	msgMethod      = "Method not allowed."
)

// errorBody is the JSON document of a failed request.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps an error to the response status and message.
func statusFor(err error) (int, string) {
	if statusErr, ok := domain.IsUpstreamStatus(err); ok {
		return statusErr.StatusCode, statusErr.Error()
	}

	switch {
	case domain.IsMissingParameter(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case domain.IsDecode(err):
		return http.StatusBadRequest, msgDecode
	case domain.IsTransport(err):
		return http.StatusBadGateway, msgTransport
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Message: message})
}
