package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/calendar"
	domain "github.com/barberia-app/barberia-api/internal/domain/appointment"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/notify"
)

// UpdateAppointmentInput carries only the fields being changed.
type UpdateAppointmentInput struct {
	AppointmentDate *time.Time
	Duration        *int
	Status          *string
	Notes           *string
}

type UpdateAppointment struct {
	repo    domain.Repository
	emitter notify.Emitter
	cal     calendar.Sync
	log     *zap.Logger
	now     func() time.Time
}

func NewUpdateAppointment(
	repo domain.Repository,
	emitter notify.Emitter,
	cal calendar.Sync,
	log *zap.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		emitter: emitter,
		cal:     cal,
		log:     log,
		now:     time.Now,
	}
}

func (uc *UpdateAppointment) WithClock(now func() time.Time) *UpdateAppointment {
	uc.now = now
	return uc
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	own, err := resolveOwnership(ctx, uc.repo, ap)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.OpUpdateAppointment, own); err != nil {
		return nil, err
	}

	rescheduled := in.AppointmentDate != nil || in.Duration != nil

	if in.Duration != nil {
		if err := domain.ValidateDuration(*in.Duration); err != nil {
			return nil, err
		}
		ap.Duration = *in.Duration
	}
	if in.AppointmentDate != nil {
		ap.AppointmentDate = *in.AppointmentDate
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	var target domain.Status
	if in.Status != nil && *in.Status != ap.Status {
		target = domain.Status(*in.Status)
		if err := domain.Transition(ap, target, uc.now()); err != nil {
			return nil, err
		}
	}

	if rescheduled {
		// The moved window needs a fresh conflict check with the
		// appointment itself excluded.
		if err := uc.repo.RescheduleAppointment(ctx, ap); err != nil {
			return nil, err
		}
	} else {
		if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
			return nil, err
		}
	}

	switch target {
	case domain.StatusConfirmed:
		emitConfirmed(uc.emitter, ap)
	case domain.StatusCancelled:
		emitCancelled(uc.emitter, ap)
	}

	if target == domain.StatusCancelled {
		dropCalendarEvent(ctx, uc.repo, uc.cal, uc.log, ap)
	} else if rescheduled && ap.CalendarEventID != nil {
		syncCalendarEvent(ctx, uc.repo, uc.cal, uc.log, ap)
	}

	return ap, nil
}
