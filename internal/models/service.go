package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a consultation offering from the catalog. Deactivated services
// stay in the table because bookings keep referencing them.
type Service struct {
	ID               string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title            string    `gorm:"not null" json:"title"`
	Description      string    `gorm:"not null" json:"description"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	FullDescription  *string   `json:"fullDescription,omitempty"`
	Category         string    `gorm:"not null" json:"category"`
	IconName         *string   `json:"iconName,omitempty"`
	Duration         int       `gorm:"not null" json:"duration"`
	Price            *float64  `json:"price,omitempty"`
	Active           bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
