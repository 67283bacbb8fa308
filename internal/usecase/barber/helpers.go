package barber

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/models"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func parseID(raw, message string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation(message)
	}
	return id, nil
}

// validateSchedule checks weekday keys and that every available day has
// a well-formed HH:MM window with open strictly before close. A nil
// schedule is accepted; it means the barber has no published hours yet.
func validateSchedule(s models.Schedule) error {
	for day, win := range s {
		if !weekdays[day] {
			return apperr.Validation(fmt.Sprintf("unknown weekday %q in schedule", day))
		}
		if !win.Available {
			continue
		}
		open, err := time.Parse("15:04", win.Open)
		if err != nil {
			return apperr.Validation(fmt.Sprintf("invalid opening time for %s", day))
		}
		close, err := time.Parse("15:04", win.Close)
		if err != nil {
			return apperr.Validation(fmt.Sprintf("invalid closing time for %s", day))
		}
		if !open.Before(close) {
			return apperr.Validation(fmt.Sprintf("opening time must be before closing time on %s", day))
		}
	}
	return nil
}
