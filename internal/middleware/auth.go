package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/auth"
	"github.com/barberia-app/barberia-api/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// AuthMiddleware verifies the bearer access token and stores the
// authenticated identity in the request context.
func AuthMiddleware(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccess(parts[1])
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// RequireRole gates a route group on an exact role. It runs after
// AuthMiddleware; fine-grained ownership checks stay in the usecases.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "your role cannot access this resource")
		c.Abort()
	}
}

// ActorFrom rebuilds the access.Actor stored by AuthMiddleware.
func ActorFrom(c *gin.Context) access.Actor {
	actor := access.Actor{Role: c.GetString(ContextUserRole)}
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			actor.UserID = id
		}
	}
	return actor
}
