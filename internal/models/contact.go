package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryStatus string

const (
	InquiryNew InquiryStatus = "NEW"
)

// ContactInquiry is immutable once created; only administrative tooling
// outside this API changes its status.
type ContactInquiry struct {
	ID        string        `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string        `gorm:"type:uuid;not null" json:"userId"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Phone     *string       `json:"phone,omitempty"`
	Message   string        `gorm:"not null" json:"message"`
	Status    InquiryStatus `gorm:"type:varchar(20);not null;default:'NEW'" json:"status"`
	CreatedAt time.Time     `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ci *ContactInquiry) BeforeCreate(_ *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
