// Package identity holds the persistence contract for users and the
// entities hanging off them. Multi-entity writes are transactional:
// both rows land or neither does.
package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/models"
)

type UserFilter struct {
	Role   string
	Offset int
	Limit  int
}

type Repository interface {
	// -------- users --------
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, filter UserFilter) ([]models.User, int64, error)

	// -------- transactional bootstraps --------
	CreateClientUser(ctx context.Context, user *models.User, client *models.Client) error
	CreateBarberUser(ctx context.Context, user *models.User, barber *models.Barber) error
	CreateOrganizationWithAdmin(ctx context.Context, admin *models.User, org *models.Organization) error
	CreateAdminUser(ctx context.Context, user *models.User) error

	// -------- organizations --------
	GetOrganizationByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetOrganizationByAdminID(ctx context.Context, adminID uuid.UUID) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, org *models.Organization) error
	ListOrganizations(ctx context.Context) ([]models.Organization, error)

	// -------- barbers / clients --------
	GetBarberByID(ctx context.Context, id uuid.UUID) (*models.Barber, error)
	GetBarberByUserID(ctx context.Context, userID uuid.UUID) (*models.Barber, error)
	ListBarbersByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Barber, error)
	UpdateBarber(ctx context.Context, barber *models.Barber) error
	GetClientByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error)
}
