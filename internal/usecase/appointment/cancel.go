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

type CancelAppointment struct {
	repo    domain.Repository
	emitter notify.Emitter
	cal     calendar.Sync
	log     *zap.Logger
	now     func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	emitter notify.Emitter,
	cal calendar.Sync,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		emitter: emitter,
		cal:     cal,
		log:     log,
		now:     time.Now,
	}
}

func (uc *CancelAppointment) WithClock(now func() time.Time) *CancelAppointment {
	uc.now = now
	return uc
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	own, err := resolveOwnership(ctx, uc.repo, ap)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.OpCancelAppointment, own); err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	emitCancelled(uc.emitter, ap)
	dropCalendarEvent(ctx, uc.repo, uc.cal, uc.log, ap)

	return ap, nil
}
