package barber

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/domain/identity"
	"github.com/barberia-app/barberia-api/internal/models"
)

type GetBarber struct {
	repo identity.Repository
}

func NewGetBarber(repo identity.Repository) *GetBarber {
	return &GetBarber{repo: repo}
}

func (uc *GetBarber) Execute(
	ctx context.Context,
	actor access.Actor,
	barberID uuid.UUID,
) (*models.Barber, error) {

	barber, err := uc.repo.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	own, err := resolveOwnership(ctx, uc.repo, barber)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.OpReadBarber, own); err != nil {
		return nil, err
	}

	return barber, nil
}

type UpdateBarberInput struct {
	Specialties *[]string
	Schedule    *models.Schedule
}

type UpdateBarber struct {
	repo identity.Repository
}

func NewUpdateBarber(repo identity.Repository) *UpdateBarber {
	return &UpdateBarber{repo: repo}
}

func (uc *UpdateBarber) Execute(
	ctx context.Context,
	actor access.Actor,
	barberID uuid.UUID,
	in UpdateBarberInput,
) (*models.Barber, error) {

	barber, err := uc.repo.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	own, err := resolveOwnership(ctx, uc.repo, barber)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.OpUpdateBarber, own); err != nil {
		return nil, err
	}

	if in.Specialties != nil {
		barber.Specialties = *in.Specialties
	}
	if in.Schedule != nil {
		if err := validateSchedule(*in.Schedule); err != nil {
			return nil, err
		}
		barber.Schedule = *in.Schedule
	}

	if err := uc.repo.UpdateBarber(ctx, barber); err != nil {
		return nil, err
	}

	return barber, nil
}

type ListBarbers struct {
	repo identity.Repository
}

func NewListBarbers(repo identity.Repository) *ListBarbers {
	return &ListBarbers{repo: repo}
}

// Execute lists the barbers of an organization. Barbers may list only
// their own organization, so the actor's organization is resolved from
// their profile before the verdict.
func (uc *ListBarbers) Execute(
	ctx context.Context,
	actor access.Actor,
	orgID uuid.UUID,
) ([]models.Barber, error) {

	org, err := uc.repo.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	own := access.Ownership{
		AdminID:        org.AdminID,
		OrganizationID: org.ID,
	}

	if actor.Role == models.RoleBarber {
		self, err := uc.repo.GetBarberByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		own.ActorOrganizationID = self.OrganizationID
	}

	if err := access.Authorize(actor, access.OpListBarbers, own); err != nil {
		return nil, err
	}

	return uc.repo.ListBarbersByOrganization(ctx, org.ID)
}

func resolveOwnership(ctx context.Context, repo identity.Repository, b *models.Barber) (access.Ownership, error) {
	org, err := repo.GetOrganizationByID(ctx, b.OrganizationID)
	if err != nil {
		return access.Ownership{}, err
	}
	return access.Ownership{
		AdminID:        org.AdminID,
		BarberUserID:   b.UserID,
		OrganizationID: b.OrganizationID,
	}, nil
}
