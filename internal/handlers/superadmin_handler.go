package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/middleware"
	ucorg "github.com/barberia-app/barberia-api/internal/usecase/organization"
)

// SuperadminHandler groups the platform-level operations: bootstrapping
// organizations, creating admins, and global listings.
type SuperadminHandler struct {
	bootstrap   *ucorg.BootstrapOrganization
	createAdmin *ucorg.CreateAdmin
	listOrgs    *ucorg.ListOrganizations
	listUsers   *ucorg.ListUsers
}

func NewSuperadminHandler(
	bootstrap *ucorg.BootstrapOrganization,
	createAdmin *ucorg.CreateAdmin,
	listOrgs *ucorg.ListOrganizations,
	listUsers *ucorg.ListUsers,
) *SuperadminHandler {
	return &SuperadminHandler{
		bootstrap:   bootstrap,
		createAdmin: createAdmin,
		listOrgs:    listOrgs,
		listUsers:   listUsers,
	}
}

type BootstrapOrganizationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	AdminEmail     string `json:"admin_email" binding:"required"`
	AdminPassword  string `json:"admin_password" binding:"required,min=8"`
	AdminFirstName string `json:"admin_first_name" binding:"required"`
	AdminLastName  string `json:"admin_last_name" binding:"required"`
	AdminPhone     string `json:"admin_phone"`
}

type CreateAdminRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}

func (h *SuperadminHandler) BootstrapOrganization(c *gin.Context) {
	var req BootstrapOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	org, err := h.bootstrap.Execute(c.Request.Context(), middleware.ActorFrom(c),
		ucorg.BootstrapInput{
			Name:           req.Name,
			Address:        req.Address,
			Phone:          req.Phone,
			Email:          req.Email,
			AdminEmail:     req.AdminEmail,
			AdminPassword:  req.AdminPassword,
			AdminFirstName: req.AdminFirstName,
			AdminLastName:  req.AdminLastName,
			AdminPhone:     req.AdminPhone,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, org)
}

func (h *SuperadminHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	user, err := h.createAdmin.Execute(c.Request.Context(), middleware.ActorFrom(c),
		ucorg.CreateAdminInput{
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

	httpresp.Created(c, user)
}

func (h *SuperadminHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.listOrgs.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, orgs)
}

func (h *SuperadminHandler) ListUsers(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := h.listUsers.Execute(c.Request.Context(), middleware.ActorFrom(c),
		ucorg.ListUsersInput{
			Role:   c.Query("role"),
			Offset: offset,
			Limit:  limit,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, users, total, offset, limit)
}
