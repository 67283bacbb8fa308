// Package notification serves the in-app inbox: users list their own
// notifications and mark them as read. Writes into the inbox happen on
// the emitting side, not here.
package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/models"
)

type Repository interface {
	GetNotificationByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, read *bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type ListNotifications struct {
	repo Repository
}

func NewListNotifications(repo Repository) *ListNotifications {
	return &ListNotifications{repo: repo}
}

// Execute lists the actor's own notifications, optionally filtered by
// read state. There is no cross-user variant; even SUPERADMIN reads
// only their own inbox.
func (uc *ListNotifications) Execute(
	ctx context.Context,
	actor access.Actor,
	read *bool,
) ([]models.Notification, error) {
	return uc.repo.ListByUser(ctx, actor.UserID, read)
}

type MarkNotificationRead struct {
	repo Repository
}

func NewMarkNotificationRead(repo Repository) *MarkNotificationRead {
	return &MarkNotificationRead{repo: repo}
}

func (uc *MarkNotificationRead) Execute(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
) (*models.Notification, error) {

	n, err := uc.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if n.UserID != actor.UserID {
		return nil, apperr.Forbidden("no access to this notification")
	}

	if !n.Read {
		if err := uc.repo.MarkRead(ctx, id); err != nil {
			return nil, err
		}
		n.Read = true
	}

	return n, nil
}
