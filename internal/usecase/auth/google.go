package auth

import (
	"context"
	"strings"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/auth"
	"github.com/barberia-app/barberia-api/internal/domain/identity"
	"github.com/barberia-app/barberia-api/internal/models"
)

type GoogleSignIn struct {
	repo     identity.Repository
	tokens   *auth.Manager
	verifier auth.IdentityVerifier
	audience string
}

func NewGoogleSignIn(
	repo identity.Repository,
	tokens *auth.Manager,
	verifier auth.IdentityVerifier,
	audience string,
) *GoogleSignIn {
	return &GoogleSignIn{
		repo:     repo,
		tokens:   tokens,
		verifier: verifier,
		audience: audience,
	}
}

// Execute resolves the Google identity in three steps: match by subject
// id, else link an existing account by email, else create a fresh CLIENT
// with its client record.
func (uc *GoogleSignIn) Execute(ctx context.Context, idToken string) (*Result, error) {
	ext, err := uc.verifier.Verify(ctx, idToken, uc.audience)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(ext.Email))

	user, err := uc.repo.GetUserByGoogleID(ctx, ext.SubjectID)
	switch {
	case err == nil:
		// Known Google account.

	case apperr.IsKind(err, apperr.KindNotFound):
		user, err = uc.repo.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			// Same email, local account: link instead of duplicating.
			sub := ext.SubjectID
			user.GoogleID = &sub
			user.AuthProvider = models.ProviderGoogle
			if err := uc.repo.UpdateUser(ctx, user); err != nil {
				return nil, err
			}

		case apperr.IsKind(err, apperr.KindNotFound):
			sub := ext.SubjectID
			user = &models.User{
				Email:        email,
				GoogleID:     &sub,
				AuthProvider: models.ProviderGoogle,
				Role:         models.RoleClient,
				FirstName:    ext.GivenName,
				LastName:     ext.FamilyName,
			}
			client := &models.Client{}
			if err := uc.repo.CreateClientUser(ctx, user, client); err != nil {
				return nil, err
			}

		default:
			return nil, err
		}

	default:
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
