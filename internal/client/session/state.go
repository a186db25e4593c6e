package session

import (
	"fmt"

	"github.com/lyrapkg/lyra/internal/client/models"
)

// Status is the tri-state of a Session.
type Status int

const (
	// StatusUnresolved means the credential store has not been read yet.
	StatusUnresolved Status = iota
	// StatusAbsent means no usable credential is stored.
	StatusAbsent
	// StatusPresent means a credential is stored and its identity decoded.
	StatusPresent
)

func (s Status) String() string {
	switch s {
	case StatusUnresolved:
		return "unresolved"
	case StatusAbsent:
		return "absent"
	case StatusPresent:
		return "present"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is a snapshot of a Session. Identity is only meaningful when Status
// is StatusPresent.
type State struct {
	Status   Status
	Identity models.Identity
}

// Present reports whether the state carries an identity.
func (s State) Present() bool { return s.Status == StatusPresent }

func unresolved() State { return State{Status: StatusUnresolved} }

func absent() State { return State{Status: StatusAbsent} }

func present(id models.Identity) State { return State{Status: StatusPresent, Identity: id} }
