package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/middleware"
	ucappt "github.com/barberia-app/barberia-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create *ucappt.CreateAppointment
	get    *ucappt.GetAppointment
	list   *ucappt.ListAppointments
	update *ucappt.UpdateAppointment
	cancel *ucappt.CancelAppointment
	delete *ucappt.DeleteAppointment
}

func NewAppointmentHandler(
	create *ucappt.CreateAppointment,
	get *ucappt.GetAppointment,
	list *ucappt.ListAppointments,
	update *ucappt.UpdateAppointment,
	cancel *ucappt.CancelAppointment,
	del *ucappt.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		get:    get,
		list:   list,
		update: update,
		cancel: cancel,
		delete: del,
	}
}

type CreateAppointmentRequest struct {
	BarberID        string    `json:"barber_id" binding:"required"`
	ClientID        string    `json:"client_id" binding:"required"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Duration        int       `json:"duration" binding:"required"`
	Notes           string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate *time.Time `json:"appointment_date"`
	Duration        *int       `json:"duration"`
	Status          *string    `json:"status"`
	Notes           *string    `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	barberID, err := uuid.Parse(req.BarberID)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "barber id is not valid")
		return
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "client id is not valid")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c),
		ucappt.CreateAppointmentInput{
			BarberID:        barberID,
			ClientID:        clientID,
			AppointmentDate: req.AppointmentDate,
			Duration:        req.Duration,
			Notes:           req.Notes,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id is not valid")
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	var in ucappt.ListAppointmentsInput

	if raw := c.Query("organization_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_organization_id", "organization id is not valid")
			return
		}
		in.OrganizationID = id
	}
	if raw := c.Query("barber_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "barber id is not valid")
			return
		}
		in.BarberID = id
	}
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_client_id", "client id is not valid")
			return
		}
		in.ClientID = id
	}
	in.Status = c.Query("status")

	aps, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id is not valid")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id,
		ucappt.UpdateAppointmentInput{
			AppointmentDate: req.AppointmentDate,
			Duration:        req.Duration,
			Status:          req.Status,
			Notes:           req.Notes,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id is not valid")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id is not valid")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
