package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/auth"
	"github.com/barberia-app/barberia-api/internal/models"
)

type RefreshTokenGormRepository struct {
	db *gorm.DB
}

func NewRefreshTokenGormRepository(db *gorm.DB) *RefreshTokenGormRepository {
	return &RefreshTokenGormRepository{db: db}
}

func (r *RefreshTokenGormRepository) Save(
	ctx context.Context,
	rec *models.RefreshToken,
) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RefreshTokenGormRepository) Find(
	ctx context.Context,
	token string,
) (*models.RefreshToken, error) {

	var rec models.RefreshToken
	if err := r.db.WithContext(ctx).First(&rec, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("refresh token not found")
		}
		return nil, err
	}
	return &rec, nil
}

// Rotate deletes the consumed token and inserts its replacement in one
// transaction. The compare-and-delete on the token value guarantees that
// of two concurrent exchanges exactly one finds a row to delete.
func (r *RefreshTokenGormRepository) Rotate(
	ctx context.Context,
	oldToken string,
	next *models.RefreshToken,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.RefreshToken{}, "token = ?", oldToken)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("refresh token not found")
		}
		return tx.Create(next).Error
	})
}

// Delete is idempotent: removing an absent token is not an error.
func (r *RefreshTokenGormRepository) Delete(
	ctx context.Context,
	token string,
) error {
	return r.db.WithContext(ctx).Delete(&models.RefreshToken{}, "token = ?", token).Error
}

// Compile-time check
var _ auth.RefreshStore = (*RefreshTokenGormRepository)(nil)
