// Package barber covers the lifecycle of barber profiles: creation by
// the owning admin, profile reads, schedule and specialty updates, and
// per-organization listings.
package barber

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

type CreateBarberInput struct {
	OrganizationID string

	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string

	Specialties []string
	Schedule    models.Schedule
}

// CreateBarber registers a BARBER user and its profile in one
// transaction, inside an organization the actor controls.
type CreateBarber struct {
	repo   identity.Repository
	hasher auth.Hasher
}

func NewCreateBarber(repo identity.Repository, hasher auth.Hasher) *CreateBarber {
	return &CreateBarber{repo: repo, hasher: hasher}
}

func (uc *CreateBarber) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateBarberInput,
) (*models.Barber, error) {

	orgID, err := parseID(in.OrganizationID, "organization id is not valid")
	if err != nil {
		return nil, err
	}

	org, err := uc.repo.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.OpCreateBarber, access.Ownership{
		AdminID:        org.AdminID,
		OrganizationID: org.ID,
	}); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailValid(email) {
		return nil, apperr.Validation("email address is not valid")
	}

	if _, err := uc.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email is already registered")
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	if err := validateSchedule(in.Schedule); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: models.ProviderLocal,
		Role:         models.RoleBarber,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
	}

	barber := &models.Barber{
		OrganizationID: org.ID,
		Specialties:    in.Specialties,
		Schedule:       in.Schedule,
	}

	if err := uc.repo.CreateBarberUser(ctx, user, barber); err != nil {
		return nil, err
	}
	barber.User = *user

	return barber, nil
}
