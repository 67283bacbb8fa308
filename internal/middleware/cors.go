package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Headers and methods the route table actually uses. The API has no
// PUT routes and only reads Content-Type and the Bearer token.
var (
	corsAllowHeaders = strings.Join([]string{
		"Content-Type",
		"Authorization",
	}, ", ")
	corsAllowMethods = strings.Join([]string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}, ", ")
)

// CORSMiddleware echoes the request origin with credentials enabled and
// short-circuits preflight requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
