package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Barber{},
		&models.Client{},
		&models.Appointment{},
		&models.RefreshToken{},
		&models.Notification{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Database-level guard for the no-overlap invariant. The locked
	// check-then-insert in the repository already serializes writers, but
	// the exclusion constraint makes the race unwinnable even against a
	// writer that bypasses the repository.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            barber_id WITH =,
            tstzrange(appointment_date, appointment_date + duration * interval '1 minute') WITH &&
        )
        WHERE (status <> 'CANCELLED')
    `)

	return db
}
