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

type CreateAdminInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// CreateAdmin registers an ADMIN user that is not yet attached to an
// organization. SUPERADMIN only.
type CreateAdmin struct {
	repo   identity.Repository
	hasher auth.Hasher
}

func NewCreateAdmin(repo identity.Repository, hasher auth.Hasher) *CreateAdmin {
	return &CreateAdmin{repo: repo, hasher: hasher}
}

func (uc *CreateAdmin) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateAdminInput,
) (*models.User, error) {

	if err := access.Authorize(actor, access.OpCreateAdmin, access.Ownership{}); err != nil {
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

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: models.ProviderLocal,
		Role:         models.RoleAdmin,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
	}

	if err := uc.repo.CreateAdminUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type ListUsersInput struct {
	Role   string
	Offset int
	Limit  int
}

// ListUsers pages through every user in the system. SUPERADMIN only.
type ListUsers struct {
	repo identity.Repository
}

func NewListUsers(repo identity.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	actor access.Actor,
	in ListUsersInput,
) ([]models.User, int64, error) {

	if err := access.Authorize(actor, access.OpListUsers, access.Ownership{}); err != nil {
		return nil, 0, err
	}

	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 20
	}
	if in.Offset < 0 {
		in.Offset = 0
	}

	return uc.repo.ListUsers(ctx, identity.UserFilter{
		Role:   in.Role,
		Offset: in.Offset,
		Limit:  in.Limit,
	})
}
