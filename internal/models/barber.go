package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DaySchedule is the working window for a single weekday.
type DaySchedule struct {
	Open      string `json:"open"`
	Close     string `json:"close"`
	Available bool   `json:"available"`
}

// Schedule maps lowercase weekday names ("monday" .. "sunday") to windows.
type Schedule map[string]DaySchedule

type Barber struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	OrganizationID uuid.UUID    `gorm:"type:uuid;index;not null" json:"organization_id"`
	Organization   Organization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"organization"`

	Specialties []string `gorm:"serializer:json" json:"specialties"`
	Schedule    Schedule `gorm:"serializer:json" json:"schedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
