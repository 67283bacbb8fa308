package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/auth"
	"github.com/barberia-app/barberia-api/internal/domain/identity"
	"github.com/barberia-app/barberia-api/internal/models"
)

// RefreshSession exchanges a refresh token for a fresh pair; the consumed
// token is gone whether the exchange succeeds or raced out.
type RefreshSession struct {
	tokens *auth.Manager
}

func NewRefreshSession(tokens *auth.Manager) *RefreshSession {
	return &RefreshSession{tokens: tokens}
}

func (uc *RefreshSession) Execute(ctx context.Context, refreshToken string) (*auth.Pair, error) {
	return uc.tokens.Rotate(ctx, refreshToken)
}

// Logout revokes the refresh token; revoking twice is fine.
type Logout struct {
	tokens *auth.Manager
}

func NewLogout(tokens *auth.Manager) *Logout {
	return &Logout{tokens: tokens}
}

func (uc *Logout) Execute(ctx context.Context, refreshToken string) error {
	return uc.tokens.Revoke(ctx, refreshToken)
}

type CurrentUser struct {
	repo identity.Repository
}

func NewCurrentUser(repo identity.Repository) *CurrentUser {
	return &CurrentUser{repo: repo}
}

func (uc *CurrentUser) Execute(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.repo.GetUserByID(ctx, userID)
}
