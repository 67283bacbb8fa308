package auth

import (
	"context"
	"strings"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/auth"
	"github.com/barberia-app/barberia-api/internal/domain/identity"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/validators"
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Result is what every sign-in path hands back to the boundary.
type Result struct {
	User *models.User `json:"user"`
	Pair *auth.Pair   `json:"tokens"`
}

type Register struct {
	repo   identity.Repository
	tokens *auth.Manager
	hasher auth.Hasher
}

func NewRegister(
	repo identity.Repository,
	tokens *auth.Manager,
	hasher auth.Hasher,
) *Register {
	return &Register{repo: repo, tokens: tokens, hasher: hasher}
}

// Execute creates a CLIENT user with a local credential plus its client
// record, both-or-neither.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Result, error) {
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
		Role:         models.RoleClient,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
	}
	client := &models.Client{}

	if err := uc.repo.CreateClientUser(ctx, user, client); err != nil {
		return nil, err
	}

	pair, err := uc.tokens.IssuePair(ctx, auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &Result{User: user, Pair: pair}, nil
}
