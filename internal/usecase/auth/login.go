package auth

import (
	"context"
	"strings"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/auth"
	"github.com/barberia-app/barberia-api/internal/domain/identity"
	"github.com/barberia-app/barberia-api/internal/models"
)

type Login struct {
	repo   identity.Repository
	tokens *auth.Manager
	hasher auth.Hasher
}

func NewLogin(
	repo identity.Repository,
	tokens *auth.Manager,
	hasher auth.Hasher,
) *Login {
	return &Login{repo: repo, tokens: tokens, hasher: hasher}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Result, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	// Provider flag first: an external-identity account never reaches
	// password comparison, even if a stray hash exists on the row.
	if user.AuthProvider != models.ProviderLocal {
		return nil, apperr.Unauthorized("this account uses Google sign-in")
	}
	if user.PasswordHash == nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if !uc.hasher.Verify(password, *user.PasswordHash) {
		return nil, apperr.Unauthorized("invalid credentials")
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
