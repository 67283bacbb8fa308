package organization

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/domain/identity"
	"github.com/barberia-app/barberia-api/internal/models"
)

type GetOrganization struct {
	repo identity.Repository
}

func NewGetOrganization(repo identity.Repository) *GetOrganization {
	return &GetOrganization{repo: repo}
}

func (uc *GetOrganization) Execute(
	ctx context.Context,
	actor access.Actor,
	orgID uuid.UUID,
) (*models.Organization, error) {

	org, err := uc.repo.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.OpReadOrganization, access.Ownership{
		AdminID:        org.AdminID,
		OrganizationID: org.ID,
	}); err != nil {
		return nil, err
	}

	return org, nil
}

type UpdateOrganizationInput struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

type UpdateOrganization struct {
	repo identity.Repository
}

func NewUpdateOrganization(repo identity.Repository) *UpdateOrganization {
	return &UpdateOrganization{repo: repo}
}

func (uc *UpdateOrganization) Execute(
	ctx context.Context,
	actor access.Actor,
	orgID uuid.UUID,
	in UpdateOrganizationInput,
) (*models.Organization, error) {

	org, err := uc.repo.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.OpUpdateOrganization, access.Ownership{
		AdminID:        org.AdminID,
		OrganizationID: org.ID,
	}); err != nil {
		return nil, err
	}

	if in.Name != nil {
		org.Name = *in.Name
	}
	if in.Address != nil {
		org.Address = *in.Address
	}
	if in.Phone != nil {
		org.Phone = *in.Phone
	}
	if in.Email != nil {
		org.Email = *in.Email
	}

	if err := uc.repo.UpdateOrganization(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

type ListOrganizations struct {
	repo identity.Repository
}

func NewListOrganizations(repo identity.Repository) *ListOrganizations {
	return &ListOrganizations{repo: repo}
}

func (uc *ListOrganizations) Execute(
	ctx context.Context,
	actor access.Actor,
) ([]models.Organization, error) {

	if err := access.Authorize(actor, access.OpListOrganizations, access.Ownership{}); err != nil {
		return nil, err
	}

	return uc.repo.ListOrganizations(ctx)
}
