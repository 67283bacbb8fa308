package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/middleware"
	"github.com/barberia-app/barberia-api/internal/models"
	ucbarber "github.com/barberia-app/barberia-api/internal/usecase/barber"
)

type BarberHandler struct {
	create *ucbarber.CreateBarber
	get    *ucbarber.GetBarber
	update *ucbarber.UpdateBarber
	list   *ucbarber.ListBarbers
}

func NewBarberHandler(
	create *ucbarber.CreateBarber,
	get *ucbarber.GetBarber,
	update *ucbarber.UpdateBarber,
	list *ucbarber.ListBarbers,
) *BarberHandler {
	return &BarberHandler{create: create, get: get, update: update, list: list}
}

type CreateBarberRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`

	Specialties []string        `json:"specialties"`
	Schedule    models.Schedule `json:"schedule"`
}

type UpdateBarberRequest struct {
	Specialties *[]string        `json:"specialties"`
	Schedule    *models.Schedule `json:"schedule"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	barber, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c),
		ucbarber.CreateBarberInput{
			OrganizationID: c.Param("id"),
			Email:          req.Email,
			Password:       req.Password,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Phone:          req.Phone,
			Specialties:    req.Specialties,
			Schedule:       req.Schedule,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "barber id is not valid")
		return
	}

	barber, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "barber id is not valid")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	barber, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id,
		ucbarber.UpdateBarberInput{
			Specialties: req.Specialties,
			Schedule:    req.Schedule,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) ListByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "organization id is not valid")
		return
	}

	barbers, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c), orgID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, barbers)
}
