package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationAppointmentCreated   = "APPOINTMENT_CREATED"
	NotificationAppointmentConfirmed = "APPOINTMENT_CONFIRMED"
	NotificationAppointmentCancelled = "APPOINTMENT_CANCELLED"
)

type Notification struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Type     string `gorm:"size:50;not null" json:"type"`
	Title    string `gorm:"size:150;not null" json:"title"`
	Message  string `gorm:"size:500;not null" json:"message"`
	Metadata string `gorm:"type:text" json:"metadata"`

	Read bool `gorm:"not null;default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
