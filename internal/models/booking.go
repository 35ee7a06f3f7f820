package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// Booking reserves one slot on the advisor's calendar. Contact fields are a
// snapshot taken at booking time, independent of later User edits.
type Booking struct {
	ID            string        `gorm:"primaryKey;type:uuid" json:"id"`
	UserID        string        `gorm:"type:uuid;not null" json:"userId"`
	UserEmail     string        `gorm:"not null" json:"userEmail"`
	UserName      string        `gorm:"not null" json:"userName"`
	UserPhone     *string       `json:"userPhone,omitempty"`
	ServiceID     string        `gorm:"type:uuid;not null" json:"serviceId"`
	BookingDate   time.Time     `gorm:"not null" json:"bookingDate"`
	BookingTime   string        `gorm:"not null" json:"bookingTime"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Notes         *string       `json:"notes,omitempty"`
	GoogleEventID *string       `json:"googleEventId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
