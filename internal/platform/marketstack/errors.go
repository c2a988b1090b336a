package marketstack

import (
	"errors"
	"fmt"
)

// ErrEmptyEndpoint is returned when FetchJSON is called without an endpoint.
var ErrEmptyEndpoint = errors.New("marketstack: endpoint is required")

// TransportError means the request never produced a response
// (DNS failure, refused connection, cancelled context, client timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("marketstack transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError means the upstream answered with a non-success status.
// Body holds the raw response text, neither parsed nor trimmed.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("marketstack http %d", e.StatusCode)
}

// DecodeError means a success response carried a body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("marketstack decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
