package repository

import (
	"context"

	"github.com/planetnakshatra/api/internal/models"
	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, tx *gorm.DB, inquiry *models.ContactInquiry) error
	FindByID(ctx context.Context, id string) (*models.ContactInquiry, error)
	FindAll(ctx context.Context) ([]models.ContactInquiry, error)
	Tx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *contactRepository) Create(ctx context.Context, tx *gorm.DB, inquiry *models.ContactInquiry) error {
	return tx.WithContext(ctx).Create(inquiry).Error
}

func (r *contactRepository) FindByID(ctx context.Context, id string) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&inquiry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *contactRepository) FindAll(ctx context.Context) ([]models.ContactInquiry, error) {
	var inquiries []models.ContactInquiry
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}
