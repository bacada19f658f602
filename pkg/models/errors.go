package models

import (
	"errors"
	"fmt"
)

// Error codes attached to APIError for UI-side branching.
const (
	ErrCodeTransport = "TRANSPORT_ERROR"
	ErrCodeHTTP      = "HTTP_ERROR"
)

// ErrKeywordNotFound is returned when a keyword lookup finds nothing.
var ErrKeywordNotFound = errors.New("keyword not found")

// APIError is a typed failure from a primary-content backend call. It
// carries the HTTP status (0 for transport failures before a response was
// obtained) and an optional diagnostic body.
type APIError struct {
	Code       string `json:"code"`
	Endpoint   string `json:"endpoint"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Endpoint, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}

// NewTransportError wraps a failure that happened before any response.
func NewTransportError(endpoint string, err error) *APIError {
	return &APIError{
		Code:     ErrCodeTransport,
		Endpoint: endpoint,
		Message:  "request failed",
		Detail:   err.Error(),
	}
}

// NewHTTPError wraps a non-2xx response.
func NewHTTPError(endpoint string, status int, body string) *APIError {
	return &APIError{
		Code:       ErrCodeHTTP,
		Endpoint:   endpoint,
		StatusCode: status,
		Message:    "unexpected status",
		Detail:     body,
	}
}

// AsAPIError unwraps err to an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
