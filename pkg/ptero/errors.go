package ptero

import (
	"errors"
	"fmt"
)

// Sentinel errors produced by the generic status translation table. Every
// failed call resolves to exactly one of these, an *HTTPError, an
// *EncodingError/*DecodingError/*NetworkError, or a classified
// *ResponseError.
var (
	// ErrPermission is returned when the panel responds with 403.
	ErrPermission = errors.New("permission denied")
	// ErrNotFound is returned when the panel responds with 404.
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited is returned when the panel responds with 429.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Static configuration errors.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrPanelURLRequired = errors.New("panel URL is required")
	ErrAPIKeyRequired   = errors.New("API key is required")
)

// HTTPError is returned for any non-2xx status that has no specific
// classification and no entry in the translation table.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}

// EncodingError is returned when a request body cannot be serialized. The
// request is never sent.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding request body: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// DecodingError is returned when a successful response body does not match
// the expected shape.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding response body: %v", e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// NetworkError is returned for transport-level failures (DNS, connection
// refusal, TLS, timeouts below the HTTP layer). Calls are never retried
// internally.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a single structured error from the panel's error envelope.
type APIError struct {
	Code   string `json:"code"   yaml:"code"`
	Status string `json:"status" yaml:"status"`
	Detail string `json:"detail" yaml:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status %s)", e.Code, e.Detail, e.Status)
}

// ResponseError is the panel's structured error body. It is only produced
// by an error classifier that recognized the envelope; the default
// classification path never returns it.
type ResponseError struct {
	Errors []APIError `json:"errors"`
}

func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return "unknown error"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	return fmt.Sprintf("multiple errors: %v", e.Errors)
}

// FirstError returns the first error in the envelope or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// IsNotFound reports whether the error is the 404 translation.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPermission reports whether the error is the 403 translation.
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}

// IsRateLimited reports whether the error is the 429 translation.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
