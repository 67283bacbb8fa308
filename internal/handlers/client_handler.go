package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/middleware"
	ucclient "github.com/barberia-app/barberia-api/internal/usecase/client"
)

type ClientHandler struct {
	get    *ucclient.GetClient
	update *ucclient.UpdateClient
}

func NewClientHandler(get *ucclient.GetClient, update *ucclient.UpdateClient) *ClientHandler {
	return &ClientHandler{get: get, update: update}
}

type UpdateClientRequest struct {
	Preferences map[string]any `json:"preferences"`
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "client id is not valid")
		return
	}

	client, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "client id is not valid")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	client, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id,
		ucclient.UpdateClientInput{Preferences: req.Preferences})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}
