package client

import (
	"errors"
	"fmt"
)

// Failure sentinels. Every error returned by HTTPClient wraps exactly one.
var (
	// ErrTransport: the request never produced a response (DNS, refused
	// connection, timeout, cancelled context).
	ErrTransport = errors.New("transport failure")
	// ErrStatus: the server answered with a non-2xx status.
	ErrStatus = errors.New("unexpected status")
	// ErrShape: a 2xx body that is not the expected JSON shape.
	ErrShape = errors.New("unexpected response shape")
)

// StatusError carries the HTTP status of a non-2xx answer.
type StatusError struct {
	Method string
	Route  string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Route, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrStatus }

// FailureKind classifies an error for callers that only keep the category.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTransport
	FailureStatus
	FailureShape
	FailureUnknown
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureShape:
		return "shape"
	default:
		return "unknown"
	}
}

// Kind maps err to its FailureKind.
func Kind(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrTransport):
		return FailureTransport
	case errors.Is(err, ErrStatus):
		return FailureStatus
	case errors.Is(err, ErrShape):
		return FailureShape
	default:
		return FailureUnknown
	}
}
