package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/middleware"
	ucauth "github.com/barberia-app/barberia-api/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucauth.Register
	login    *ucauth.Login
	google   *ucauth.GoogleSignIn
	refresh  *ucauth.RefreshSession
	logout   *ucauth.Logout
	current  *ucauth.CurrentUser
}

func NewAuthHandler(
	register *ucauth.Register,
	login *ucauth.Login,
	google *ucauth.GoogleSignIn,
	refresh *ucauth.RefreshSession,
	logout *ucauth.Logout,
	current *ucauth.CurrentUser,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		google:   google,
		refresh:  refresh,
		logout:   logout,
		current:  current,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	res, err := h.register.Execute(c.Request.Context(), ucauth.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	res, err := h.google.Execute(c.Request.Context(), req.IDToken)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	pair, err := h.refresh.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, pair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	if err := h.logout.Execute(c.Request.Context(), req.RefreshToken); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	user, err := h.current.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, user)
}
