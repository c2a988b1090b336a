// Package domain defines domain-level errors for the eod feature.
package domain

import (
	"context"
	"errors"
)

// ErrorKind classifies why fetching end-of-day data failed.
type ErrorKind string

const (
	// KindTransport means no response was received from the upstream.
	KindTransport ErrorKind = "transport"
	// KindUpstream means the upstream answered with a non-success status.
	KindUpstream ErrorKind = "upstream"
	// KindUnknown covers everything else (undecodable bodies, bad records).
	KindUnknown ErrorKind = "unknown"
)

// FetchError is the single, display-ready error value produced by a failed fetch.
type FetchError struct {
	Kind       ErrorKind
	Code       string // Upstream error code when the body carried one
	Message    string // Text shown to the user; never empty
	StatusCode int    // Upstream HTTP status for KindUpstream
	Err        error  // Underlying cause, if any
}

func (e *FetchError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *FetchError) Unwrap() error { return e.Err }

// AsFetchError returns err as a *FetchError. Errors that are not already
// normalized become KindTransport for context cancellation and KindUnknown
// otherwise. A nil err returns nil.
func AsFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	kind := KindUnknown
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		kind = KindTransport
	}
	msg := err.Error()
	if msg == "" {
		msg = "unknown error"
	}
	return &FetchError{Kind: kind, Message: msg, Err: err}
}
