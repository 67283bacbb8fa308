package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/notify"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) CreateNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) GetNotificationByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Notification, error) {

	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("notification not found")
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationGormRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	read *bool,
) ([]models.Notification, error) {

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if read != nil {
		q = q.Where("read = ?", *read)
	}

	var notifications []models.Notification
	if err := q.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationGormRepository) MarkRead(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}

// Compile-time check
var _ notify.Store = (*NotificationGormRepository)(nil)
