package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/models"
)

// ListFilter narrows appointment listings. Zero-value fields are ignored.
type ListFilter struct {
	OrganizationID uuid.UUID
	BarberID       uuid.UUID
	ClientID       uuid.UUID
	Status         Status
}

type Repository interface {
	// -------- ownership chain lookups --------
	GetBarberByID(ctx context.Context, id uuid.UUID) (*models.Barber, error)
	GetBarberByUserID(ctx context.Context, userID uuid.UUID) (*models.Barber, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	GetClientByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error)
	GetOrganizationByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetOrganizationByAdminID(ctx context.Context, adminID uuid.UUID) (*models.Organization, error)

	// -------- appointments --------
	GetAppointmentByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)

	// CreateAppointment runs the conflict check and the insert as one
	// transactional unit; overlapping non-cancelled windows for the
	// same barber make it fail with a ConflictError.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// RescheduleAppointment saves ap after re-running the conflict check
	// with ap itself excluded, in one transactional unit.
	RescheduleAppointment(ctx context.Context, ap *models.Appointment) error

	SaveAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	ListAppointments(ctx context.Context, filter ListFilter) ([]models.Appointment, error)

	// SetCalendarEvent stores or clears the external calendar reference
	// independently of the appointment write.
	SetCalendarEvent(ctx context.Context, id uuid.UUID, eventID *string) error
}
