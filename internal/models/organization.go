package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	AdminID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"admin_id"`
	Admin   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
