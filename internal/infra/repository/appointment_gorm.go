package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barberia-app/barberia-api/internal/apperr"
	domain "github.com/barberia-app/barberia-api/internal/domain/appointment"
	"github.com/barberia-app/barberia-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Ownership chain lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarberByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&barber, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("barber not found")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetBarberByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		First(&barber, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("barber not found")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("client not found")
		}
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetClientByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		First(&client, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("client not found")
		}
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetOrganizationByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Organization, error) {

	var org models.Organization
	if err := r.db.WithContext(ctx).
		First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("organization not found")
		}
		return nil, err
	}
	return &org, nil
}

func (r *AppointmentGormRepository) GetOrganizationByAdminID(
	ctx context.Context,
	adminID uuid.UUID,
) (*models.Organization, error) {

	var org models.Organization
	if err := r.db.WithContext(ctx).
		First(&org, "admin_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("organization not found")
		}
		return nil, err
	}
	return &org, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Barber.User").
		Preload("Client").
		Preload("Client.User").
		First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("appointment not found")
		}
		return nil, err
	}
	return &ap, nil
}

// CreateAppointment locks the barber's overlapping rows, re-checks the
// window and inserts, all in one transaction. The exclusion constraint
// catches anything that slips past the lock.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoOverlap(tx, ap, uuid.Nil); err != nil {
			return err
		}
		// Preloaded Barber/Client structs ride along on ap; keep the
		// write scoped to the appointments table.
		return tx.Omit(clause.Associations).Create(ap).Error
	})

	if isOverlapViolation(err) {
		return apperr.Conflict("the barber already has an appointment in that time slot")
	}
	return err
}

// RescheduleAppointment saves ap after re-running the conflict check with
// ap itself excluded.
func (r *AppointmentGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoOverlap(tx, ap, ap.ID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(ap).Error
	})

	if isOverlapViolation(err) {
		return apperr.Conflict("the barber already has an appointment in that time slot")
	}
	return err
}

func assertNoOverlap(tx *gorm.DB, ap *models.Appointment, excludeID uuid.UUID) error {
	end := ap.AppointmentDate.Add(time.Duration(ap.Duration) * time.Minute)

	q := tx.Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status <> ? AND appointment_date < ? AND appointment_date + duration * interval '1 minute' > ?",
			ap.BarberID, string(domain.StatusCancelled), end, ap.AppointmentDate,
		)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("the barber already has an appointment in that time slot")
	}
	return nil
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Barber.User").
		Preload("Client").
		Preload("Client.User")

	if filter.OrganizationID != uuid.Nil {
		q = q.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.BarberID != uuid.Nil {
		q = q.Where("barber_id = ?", filter.BarberID)
	}
	if filter.ClientID != uuid.Nil {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var aps []models.Appointment
	if err := q.Order("appointment_date ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) SetCalendarEvent(
	ctx context.Context,
	id uuid.UUID,
	eventID *string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("calendar_event_id", eventID).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
