package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// Duration bounds in minutes.
	MinAppointmentDuration = 15
	MaxAppointmentDuration = 480
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID uuid.UUID `gorm:"type:uuid;index;not null" json:"barber_id"`
	Barber   Barber    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   Client    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	// Denormalized from the barber at creation; always equals
	// barber.OrganizationID.
	OrganizationID uuid.UUID    `gorm:"type:uuid;index;not null" json:"organization_id"`
	Organization   Organization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"organization"`

	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	Duration        int       `gorm:"not null" json:"duration"`

	Status string `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	CalendarEventID *string `gorm:"size:255" json:"calendar_event_id,omitempty"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// End is the exclusive end of the appointment window.
func (a *Appointment) End() time.Time {
	return a.AppointmentDate.Add(time.Duration(a.Duration) * time.Minute)
}
