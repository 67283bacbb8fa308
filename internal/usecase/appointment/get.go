package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/access"
	domain "github.com/barberia-app/barberia-api/internal/domain/appointment"
	"github.com/barberia-app/barberia-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
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

	if err := access.Authorize(actor, access.OpReadAppointment, own); err != nil {
		return nil, err
	}

	return ap, nil
}
