package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/barberia-api/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond maps a core error to its transport status. Errors outside the
// taxonomy stay opaque internal failures.
func Respond(c *gin.Context, err error) {
	kind, ok := apperr.KindOf(err)
	if !ok {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch kind {
	case apperr.KindValidation:
		BadRequest(c, "validation_error", err.Error())
	case apperr.KindUnauthorized, apperr.KindExpiredToken:
		Unauthorized(c, "unauthorized", err.Error())
	case apperr.KindForbidden:
		Forbidden(c, "forbidden", err.Error())
	case apperr.KindNotFound:
		NotFound(c, "not_found", err.Error())
	case apperr.KindConflict:
		Conflict(c, "conflict", err.Error())
	default:
		Internal(c, "internal_error", "Something went wrong.")
	}
}
