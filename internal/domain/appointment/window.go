package appointment

import (
	"time"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/models"
)

// Window is a half-open time interval [Start, End): the start instant is
// booked, the end instant is free again.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start time.Time, durationMinutes int) Window {
	return Window{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps reports half-open intersection: back-to-back windows do not
// conflict.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// ValidateDuration enforces the booking granularity bounds.
func ValidateDuration(minutes int) error {
	if minutes < models.MinAppointmentDuration || minutes > models.MaxAppointmentDuration {
		return apperr.Validation("duration must be between 15 and 480 minutes")
	}
	return nil
}

// ValidateNotInPast rejects creation windows that already started,
// measured against the evaluation instant.
func ValidateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return apperr.Conflict("appointment date must be in the future")
	}
	return nil
}
