// Package calendar is the narrow contract to the external calendar
// collaborator. Sync failures must never corrupt the appointment record:
// callers store or clear the event reference independently and log errors
// instead of propagating them.
package calendar

import (
	"context"

	"github.com/barberia-app/barberia-api/internal/models"
)

type Sync interface {
	// UpsertEvent creates or updates the calendar event for ap and
	// returns the provider's event id.
	UpsertEvent(ctx context.Context, ap *models.Appointment) (string, error)
	// DeleteEvent removes the event; deleting a nonexistent event is
	// treated as success.
	DeleteEvent(ctx context.Context, eventID string) error
}

// Disabled is the default wiring when no calendar provider is configured.
type Disabled struct{}

func (Disabled) UpsertEvent(ctx context.Context, ap *models.Appointment) (string, error) {
	return "", nil
}

func (Disabled) DeleteEvent(ctx context.Context, eventID string) error {
	return nil
}
