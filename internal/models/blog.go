package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog is a published article for the insights section of the site.
type Blog struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Thumbnail   string    `json:"thumbnail"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `gorm:"not null" json:"content"`
	Author      string    `gorm:"not null" json:"author"`
	PublishedAt time.Time `gorm:"not null" json:"publishedDate"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	Category    *string   `json:"category,omitempty"`
	Published   bool      `gorm:"not null;default:true" json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (b *Blog) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
