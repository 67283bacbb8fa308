package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/middleware"
	ucnotif "github.com/barberia-app/barberia-api/internal/usecase/notification"
)

type NotificationHandler struct {
	list     *ucnotif.ListNotifications
	markRead *ucnotif.MarkNotificationRead
}

func NewNotificationHandler(
	list *ucnotif.ListNotifications,
	markRead *ucnotif.MarkNotificationRead,
) *NotificationHandler {
	return &NotificationHandler{list: list, markRead: markRead}
}

func (h *NotificationHandler) List(c *gin.Context) {
	var read *bool
	switch c.Query("read") {
	case "true":
		v := true
		read = &v
	case "false":
		v := false
		read = &v
	}

	notifications, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c), read)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "notification id is not valid")
		return
	}

	n, err := h.markRead.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, n)
}
