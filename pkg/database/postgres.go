package database

import (
	"log"

	"github.com/planetnakshatra/api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Service{},
		&models.User{},
		&models.Booking{},
		&models.ContactInquiry{},
		&models.Blog{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: at most one non-cancelled booking per slot,
	// across the advisor's whole calendar
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_slot
		ON bookings (booking_date, booking_time)
		WHERE status <> 'CANCELLED'
	`)

	return db
}
