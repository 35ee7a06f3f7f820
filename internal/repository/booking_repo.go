package repository

import (
	"context"
	"time"

	"github.com/planetnakshatra/api/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	// FindActiveSlot returns the non-cancelled booking occupying the exact
	// (start, timeStr) slot, or gorm.ErrRecordNotFound.
	FindActiveSlot(ctx context.Context, start time.Time, timeStr string) (*models.Booking, error)
	FindForDay(ctx context.Context, from, to time.Time, serviceID string) ([]models.Booking, error)
	SetConfirmed(ctx context.Context, id, googleEventID string) error
	Tx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		Order("booking_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindActiveSlot(ctx context.Context, start time.Time, timeStr string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("booking_date = ? AND booking_time = ? AND status <> ?", start, timeStr, models.StatusCancelled).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindForDay(ctx context.Context, from, to time.Time, serviceID string) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Where("booking_date >= ? AND booking_date < ?", from, to).
		Where("status <> ?", models.StatusCancelled)
	if serviceID != "" {
		q = q.Where("service_id = ?", serviceID)
	}
	if err := q.Order("booking_time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) SetConfirmed(ctx context.Context, id, googleEventID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          models.StatusConfirmed,
			"google_event_id": googleEventID,
		}).Error
}
