package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/junsalon/salon-api/internal/config"
	"github.com/junsalon/salon-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates the schema plus the partial unique index that makes the
// no-double-booking invariant hold in the store itself: a concurrent insert
// for an already-taken (date, slot) pair fails with a unique violation
// instead of slipping through the availability re-check.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Contact{},
		&models.BookingRecord{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_active_booking_per_slot
        ON booking_records (date, time_slot_id)
        WHERE cancelled = false
    `).Error
}
