package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/models"
)

// Claims is the signed identity carried by both tokens of a pair.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshStore persists refresh-token records. Rotate must be a
// compare-and-delete keyed on the consumed token: of two concurrent
// exchanges of the same token, exactly one finds a row to delete.
type RefreshStore interface {
	Save(ctx context.Context, rec *models.RefreshToken) error
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	Rotate(ctx context.Context, oldToken string, next *models.RefreshToken) error
	Delete(ctx context.Context, token string) error
}

type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	store         RefreshStore
	now           func() time.Time
}

func NewManager(cfg *config.Config, store RefreshStore) *Manager {
	return &Manager{
		accessSecret:  []byte(cfg.JWTSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		store:         store,
		now:           time.Now,
	}
}

// WithClock overrides the manager's clock, for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// IssuePair signs a short-lived access token and a long-lived refresh
// token and persists the refresh record.
func (m *Manager) IssuePair(ctx context.Context, claims Claims) (*Pair, error) {
	now := m.now()

	access, err := m.sign(claims, m.accessSecret, now, m.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := m.sign(claims, m.refreshSecret, now, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	rec := &models.RefreshToken{
		UserID:    claims.UserID,
		Token:     refresh,
		ExpiresAt: now.Add(m.refreshTTL),
	}
	if err := m.store.Save(ctx, rec); err != nil {
		return nil, err
	}

	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess returns the claims of a valid access token.
func (m *Manager) VerifyAccess(token string) (*Claims, error) {
	return m.parse(token, m.accessSecret)
}

// Rotate exchanges a refresh token for a fresh pair, exactly once.
// Expired records are removed before reporting the expiry.
func (m *Manager) Rotate(ctx context.Context, refresh string) (*Pair, error) {
	claims, err := m.parse(refresh, m.refreshSecret)
	if err != nil {
		return nil, err
	}

	rec, err := m.store.Find(ctx, refresh)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("refresh token is not recognized")
		}
		return nil, err
	}

	now := m.now()
	if rec.ExpiresAt.Before(now) {
		if err := m.store.Delete(ctx, refresh); err != nil {
			return nil, err
		}
		return nil, apperr.ExpiredToken("refresh token has expired")
	}

	access, err := m.sign(*claims, m.accessSecret, now, m.accessTTL)
	if err != nil {
		return nil, err
	}
	next, err := m.sign(*claims, m.refreshSecret, now, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	nextRec := &models.RefreshToken{
		UserID:    claims.UserID,
		Token:     next,
		ExpiresAt: now.Add(m.refreshTTL),
	}
	if err := m.store.Rotate(ctx, refresh, nextRec); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			// Lost the race against a concurrent exchange.
			return nil, apperr.Unauthorized("refresh token is not recognized")
		}
		return nil, err
	}

	return &Pair{AccessToken: access, RefreshToken: next}, nil
}

// Revoke drops the refresh record if present. Revoking an unknown token
// is a no-op, so logout stays idempotent.
func (m *Manager) Revoke(ctx context.Context, refresh string) error {
	return m.store.Delete(ctx, refresh)
}

func (m *Manager) sign(claims Claims, secret []byte, now time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		// jti keeps every signed token unique: iat/exp only have
		// second resolution, and a rotation landing in the issue
		// second must not mint the consumed token again.
		"jti":   uuid.NewString(),
		"sub":   claims.UserID.String(),
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

func (m *Manager) parse(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Unauthorized("invalid token claims")
	}

	sub, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, apperr.Unauthorized("invalid token subject")
	}

	return &Claims{UserID: userID, Email: email, Role: role}, nil
}
