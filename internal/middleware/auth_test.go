package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/auth"
	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/models"
)

type stubRefreshStore struct {
	rows map[string]*models.RefreshToken
}

func (s *stubRefreshStore) Save(_ context.Context, rec *models.RefreshToken) error {
	s.rows[rec.Token] = rec
	return nil
}

func (s *stubRefreshStore) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	rec, ok := s.rows[token]
	if !ok {
		return nil, apperr.NotFound("refresh token not found")
	}
	return rec, nil
}

func (s *stubRefreshStore) Rotate(_ context.Context, oldToken string, next *models.RefreshToken) error {
	delete(s.rows, oldToken)
	s.rows[next.Token] = next
	return nil
}

func (s *stubRefreshStore) Delete(_ context.Context, token string) error {
	delete(s.rows, token)
	return nil
}

func newTestManager() *auth.Manager {
	return auth.NewManager(&config.Config{
		JWTSecret:        "access-secret",
		JWTRefreshSecret: "refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
	}, &stubRefreshStore{rows: make(map[string]*models.RefreshToken)})
}

func newTestRouter(tokens *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secured", AuthMiddleware(tokens), func(c *gin.Context) {
		actor := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": actor.UserID.String(),
			"role":    actor.Role,
		})
	})
	r.GET("/admin-only",
		AuthMiddleware(tokens),
		RequireRole(models.RoleSuperadmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	tokens := newTestManager()
	router := newTestRouter(tokens)

	userID := uuid.New()
	pair, err := tokens.IssuePair(context.Background(), auth.Claims{
		UserID: userID,
		Email:  "ana@example.com",
		Role:   models.RoleClient,
	})
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid bearer token", header: "Bearer " + pair.AccessToken, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + pair.AccessToken, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "refresh token in access slot", header: "Bearer " + pair.RefreshToken, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/secured", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	tokens := newTestManager()
	router := newTestRouter(tokens)

	call := func(role string) int {
		pair, err := tokens.IssuePair(context.Background(), auth.Claims{
			UserID: uuid.New(),
			Email:  "x@example.com",
			Role:   role,
		})
		if err != nil {
			t.Fatalf("IssuePair: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	if got := call(models.RoleSuperadmin); got != http.StatusOK {
		t.Errorf("superadmin status = %d, want 200", got)
	}
	if got := call(models.RoleAdmin); got != http.StatusForbidden {
		t.Errorf("admin status = %d, want 403", got)
	}
}
