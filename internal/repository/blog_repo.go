package repository

import (
	"context"

	"github.com/planetnakshatra/api/internal/models"
	"gorm.io/gorm"
)

type BlogRepository interface {
	FindPublished(ctx context.Context) ([]models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) FindPublished(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}
