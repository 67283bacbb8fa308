package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/domain/identity"
	"github.com/barberia-app/barberia-api/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *IdentityGormRepository) GetUserByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) GetUserByGoogleID(
	ctx context.Context,
	googleID string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "google_id = ?", googleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) UpdateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *IdentityGormRepository) ListUsers(
	ctx context.Context,
	filter identity.UserFilter,
) ([]models.User, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.User{})
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := q.Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// --------------------------------------------------
// Transactional bootstraps
// --------------------------------------------------

func (r *IdentityGormRepository) CreateClientUser(
	ctx context.Context,
	user *models.User,
	client *models.Client,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		client.UserID = user.ID
		return tx.Create(client).Error
	})

	if isUniqueViolation(err) {
		return apperr.Conflict("email is already registered")
	}
	return err
}

func (r *IdentityGormRepository) CreateBarberUser(
	ctx context.Context,
	user *models.User,
	barber *models.Barber,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		barber.UserID = user.ID
		return tx.Create(barber).Error
	})

	if isUniqueViolation(err) {
		return apperr.Conflict("email is already registered")
	}
	return err
}

func (r *IdentityGormRepository) CreateOrganizationWithAdmin(
	ctx context.Context,
	admin *models.User,
	org *models.Organization,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		org.AdminID = admin.ID
		return tx.Create(org).Error
	})

	if isUniqueViolation(err) {
		return apperr.Conflict("email is already registered")
	}
	return err
}

func (r *IdentityGormRepository) CreateAdminUser(
	ctx context.Context,
	user *models.User,
) error {

	err := r.db.WithContext(ctx).Create(user).Error
	if isUniqueViolation(err) {
		return apperr.Conflict("email is already registered")
	}
	return err
}

// --------------------------------------------------
// Organizations
// --------------------------------------------------

func (r *IdentityGormRepository) GetOrganizationByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Organization, error) {

	var org models.Organization
	if err := r.db.WithContext(ctx).
		Preload("Admin").
		First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("organization not found")
		}
		return nil, err
	}
	return &org, nil
}

func (r *IdentityGormRepository) GetOrganizationByAdminID(
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

func (r *IdentityGormRepository) UpdateOrganization(
	ctx context.Context,
	org *models.Organization,
) error {
	// Admin may be preloaded on org; the write stays on organizations.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(org).Error
}

func (r *IdentityGormRepository) ListOrganizations(
	ctx context.Context,
) ([]models.Organization, error) {

	var orgs []models.Organization
	if err := r.db.WithContext(ctx).
		Preload("Admin").
		Order("created_at DESC").
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// --------------------------------------------------
// Barbers / Clients
// --------------------------------------------------

func (r *IdentityGormRepository) GetBarberByID(
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

func (r *IdentityGormRepository) GetBarberByUserID(
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

func (r *IdentityGormRepository) ListBarbersByOrganization(
	ctx context.Context,
	orgID uuid.UUID,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *IdentityGormRepository) UpdateBarber(
	ctx context.Context,
	barber *models.Barber,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(barber).Error
}

func (r *IdentityGormRepository) GetClientByID(
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

func (r *IdentityGormRepository) UpdateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(client).Error
}

func (r *IdentityGormRepository) GetClientByUserID(
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

// Compile-time check
var _ identity.Repository = (*IdentityGormRepository)(nil)
