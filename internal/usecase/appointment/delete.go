package appointment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/calendar"
	domain "github.com/barberia-app/barberia-api/internal/domain/appointment"
)

// DeleteAppointment removes the record entirely. Distinct from
// cancellation, which is a status transition.
type DeleteAppointment struct {
	repo domain.Repository
	cal  calendar.Sync
	log  *zap.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	cal calendar.Sync,
	log *zap.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, cal: cal, log: log}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return err
	}

	own, err := resolveOwnership(ctx, uc.repo, ap)
	if err != nil {
		return err
	}

	if err := access.Authorize(actor, access.OpDeleteAppointment, own); err != nil {
		return err
	}

	dropCalendarEvent(ctx, uc.repo, uc.cal, uc.log, ap)

	return uc.repo.DeleteAppointment(ctx, ap.ID)
}
