package appointment

import (
	"fmt"

	"github.com/barberia-app/barberia-api/internal/apperr"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// transitions is the full state machine. COMPLETED and CANCELLED are
// terminal: no entry, no exit.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition rejects illegal moves, including any attempt to leave a
// terminal state.
func CheckTransition(from, to Status) error {
	if !IsValidStatus(to) {
		return apperr.Validation(fmt.Sprintf("unknown appointment status %q", to))
	}
	if !from.CanTransition(to) {
		return apperr.Conflict(fmt.Sprintf("cannot change appointment status from %s to %s", from, to))
	}
	return nil
}
