package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for upstream error classification.
var (
	ErrAuthentication     = errors.New("AuthenticationError")
	ErrRateLimit          = errors.New("RateLimitError")
	ErrNotFound           = errors.New("NotFoundError")
	ErrTimeout            = errors.New("Timeout")
	ErrServiceUnavailable = errors.New("ServiceUnavailableError")
	ErrInvalidRequest     = errors.New("InvalidRequestError")
	ErrPermission         = errors.New("PermissionDeniedError")
)

// Error codes used in the "error" field of error response bodies.
const (
	CodeMethodNotAllowed = "method_not_allowed"
	CodeUnauthorized     = "unauthorized"
	CodeBadRequest       = "bad_request"
	CodeServerError      = "server_error"
	CodeUpstreamError    = "upstream_error"
)

// APIError is the unified error type returned by upstream calls.
// Message carries the upstream diagnostic and is logged server-side only;
// clients always receive a generic message for 500-class failures.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Provider   string `json:"provider"`
	Err        error  `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s (status=%d)", e.Provider, e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrorResponse is the JSON error body returned by the proxy.
// Every error path produces this shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MapHTTPStatusToError maps an upstream HTTP status code to a sentinel error.
func MapHTTPStatusToError(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrAuthentication
	case status == http.StatusForbidden:
		return ErrPermission
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusTooManyRequests:
		return ErrRateLimit
	case status == http.StatusBadRequest:
		return ErrInvalidRequest
	case status == http.StatusRequestTimeout:
		return ErrTimeout
	case status >= 500:
		return ErrServiceUnavailable
	default:
		return fmt.Errorf("unexpected status code: %d", status)
	}
}
