package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/middleware"
	ucorg "github.com/barberia-app/barberia-api/internal/usecase/organization"
)

type OrganizationHandler struct {
	get    *ucorg.GetOrganization
	update *ucorg.UpdateOrganization
}

func NewOrganizationHandler(
	get *ucorg.GetOrganization,
	update *ucorg.UpdateOrganization,
) *OrganizationHandler {
	return &OrganizationHandler{get: get, update: update}
}

type UpdateOrganizationRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "organization id is not valid")
		return
	}

	org, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, org)
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "organization id is not valid")
		return
	}

	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	org, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id,
		ucorg.UpdateOrganizationInput{
			Name:    req.Name,
			Address: req.Address,
			Phone:   req.Phone,
			Email:   req.Email,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, org)
}
