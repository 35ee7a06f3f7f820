package repository

import (
	"context"

	"github.com/planetnakshatra/api/internal/models"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	FindByID(ctx context.Context, id string) (*models.Service, error)
	FindAllActive(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, id string, fields map[string]any) (*models.Service, error)
	Deactivate(ctx context.Context, id string) (*models.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, svc *models.Service) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) FindAllActive(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Service, error) {
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *serviceRepository) Deactivate(ctx context.Context, id string) (*models.Service, error) {
	return r.Update(ctx, id, map[string]any{"active": false})
}
