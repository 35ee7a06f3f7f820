package repository

import (
	"context"
	"errors"

	"github.com/planetnakshatra/api/internal/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	// FindOrCreate looks the user up by email inside tx and creates it when
	// absent. Profile fields on an existing user are never overwritten.
	FindOrCreate(ctx context.Context, tx *gorm.DB, email, name string, phone *string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindOrCreate(ctx context.Context, tx *gorm.DB, email, name string, phone *string) (*models.User, error) {
	var user models.User
	err := tx.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{Email: email, Name: name, Phone: phone}
	if err := tx.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
