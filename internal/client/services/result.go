package services

import (
	"fmt"

	"github.com/lyrapkg/lyra/internal/client/client"
)

// Failure says why an operation did not succeed. Callers that only need
// pass/fail use the bool methods instead.
type Failure int

const (
	FailureNone Failure = iota
	// FailureNoCredential: a change-* call with nothing in the store. No
	// request was sent.
	FailureNoCredential
	FailureTransport
	FailureStatus
	FailureShape
	// FailureStore: the server accepted the call but the new credential could
	// not be persisted.
	FailureStore
	FailureUnknown
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureNoCredential:
		return "no credential"
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureShape:
		return "shape"
	case FailureStore:
		return "store"
	case FailureUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Failure(%d)", int(f))
	}
}

// Result is the typed outcome of a mutation.
type Result struct {
	OK      bool
	Failure Failure
}

func ok() Result { return Result{OK: true} }

func failed(f Failure) Result { return Result{Failure: f} }

// fromClient maps a transport error onto a Failure.
func fromClient(err error) Failure {
	switch client.Kind(err) {
	case client.FailureNone:
		return FailureNone
	case client.FailureTransport:
		return FailureTransport
	case client.FailureStatus:
		return FailureStatus
	case client.FailureShape:
		return FailureShape
	default:
		return FailureUnknown
	}
}
