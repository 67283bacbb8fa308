package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/apperr"
	domain "github.com/barberia-app/barberia-api/internal/domain/appointment"
	"github.com/barberia-app/barberia-api/internal/models"
)

type ListAppointmentsInput struct {
	OrganizationID uuid.UUID
	BarberID       uuid.UUID
	ClientID       uuid.UUID
	Status         string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute narrows the filter to the actor's own scope for non-privileged
// roles: a CLIENT only ever sees its own appointments, a BARBER its own
// agenda, an ADMIN its own organization. SUPERADMIN queries pass through
// untouched.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor access.Actor,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	if in.Status != "" && !domain.IsValidStatus(domain.Status(in.Status)) {
		return nil, apperr.Validation("unknown appointment status filter")
	}

	filter := domain.ListFilter{
		OrganizationID: in.OrganizationID,
		BarberID:       in.BarberID,
		ClientID:       in.ClientID,
		Status:         domain.Status(in.Status),
	}

	switch actor.Role {
	case models.RoleClient:
		client, err := uc.repo.GetClientByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		filter.ClientID = client.ID

	case models.RoleBarber:
		barber, err := uc.repo.GetBarberByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		filter.BarberID = barber.ID

	case models.RoleAdmin:
		org, err := uc.repo.GetOrganizationByAdminID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		filter.OrganizationID = org.ID

	case models.RoleSuperadmin:
		// Full visibility; honors whatever filter was supplied.

	default:
		return nil, apperr.Forbidden("your role cannot list appointments")
	}

	return uc.repo.ListAppointments(ctx, filter)
}
