package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleSuperadmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleBarber     = "BARBER"
	RoleClient     = "CLIENT"
)

const (
	ProviderLocal  = "LOCAL"
	ProviderGoogle = "GOOGLE"
)

// User carries exactly one credential: a bcrypt hash for LOCAL accounts or
// a Google subject id for GOOGLE accounts.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash *string `gorm:"size:255" json:"-"`
	GoogleID     *string `gorm:"size:100;uniqueIndex" json:"-"`
	AuthProvider string  `gorm:"size:20;not null;default:'LOCAL'" json:"auth_provider"`

	Role      string `gorm:"size:20;not null" json:"role"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Phone     string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
