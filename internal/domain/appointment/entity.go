package appointment

import (
	"time"

	"github.com/barberia-app/barberia-api/internal/models"
)

// Transition moves ap to the target status after checking the state
// machine, stamping the matching timestamp.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CheckTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCancelled, now)
}
