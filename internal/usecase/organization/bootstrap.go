package organization

import (
	"context"
	"strings"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/auth"
	"github.com/barberia-app/barberia-api/internal/domain/identity"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/validators"
)

type BootstrapInput struct {
	Name    string
	Address string
	Phone   string
	Email   string

	AdminEmail     string
	AdminPassword  string
	AdminFirstName string
	AdminLastName  string
	AdminPhone     string
}

// BootstrapOrganization creates an organization together with its admin
// user, both-or-neither. SUPERADMIN only.
type BootstrapOrganization struct {
	repo   identity.Repository
	hasher auth.Hasher
}

func NewBootstrapOrganization(
	repo identity.Repository,
	hasher auth.Hasher,
) *BootstrapOrganization {
	return &BootstrapOrganization{repo: repo, hasher: hasher}
}

func (uc *BootstrapOrganization) Execute(
	ctx context.Context,
	actor access.Actor,
	in BootstrapInput,
) (*models.Organization, error) {

	if err := access.Authorize(actor, access.OpBootstrapOrganization, access.Ownership{}); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.AdminEmail))
	if !validators.IsEmailValid(email) {
		return nil, apperr.Validation("admin email address is not valid")
	}

	if _, err := uc.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("admin email is already registered")
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	hash, err := uc.hasher.Hash(in.AdminPassword)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: models.ProviderLocal,
		Role:         models.RoleAdmin,
		FirstName:    in.AdminFirstName,
		LastName:     in.AdminLastName,
		Phone:        in.AdminPhone,
	}

	org := &models.Organization{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	}

	if err := uc.repo.CreateOrganizationWithAdmin(ctx, admin, org); err != nil {
		return nil, err
	}
	org.Admin = *admin

	return org, nil
}
