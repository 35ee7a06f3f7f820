package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/planetnakshatra/api/internal/dto"
	"github.com/planetnakshatra/api/internal/models"
	"github.com/planetnakshatra/api/internal/repository"
	"gorm.io/gorm"
)

type CatalogService interface {
	List(ctx context.Context) []models.Service
	Get(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*models.Service, error)
	Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*models.Service, error)
	Deactivate(ctx context.Context, id string) (*models.Service, error)
}

type catalogService struct {
	services repository.ServiceRepository
}

func NewCatalogService(services repository.ServiceRepository) CatalogService {
	return &catalogService{services: services}
}

// List degrades to an empty catalog when the database is unreachable so the
// public site keeps rendering.
func (s *catalogService) List(ctx context.Context) []models.Service {
	services, err := s.services.FindAllActive(ctx)
	if err != nil {
		log.Printf("[catalog] failed to list services, returning empty catalog: %v", err)
		return []models.Service{}
	}
	return services
}

func (s *catalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Create(ctx context.Context, req *dto.CreateServiceRequest) (*models.Service, error) {
	svc := &models.Service{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Category:         req.Category,
		IconName:         req.IconName,
		Duration:         req.Duration,
		Price:            req.Price,
		Active:           true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*models.Service, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ShortDescription != nil {
		fields["short_description"] = *req.ShortDescription
	}
	if req.FullDescription != nil {
		fields["full_description"] = *req.FullDescription
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.IconName != nil {
		fields["icon_name"] = *req.IconName
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	svc, err := s.services.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

// Deactivate is the "delete" operation: services referenced by bookings are
// never removed, only hidden from the catalog.
func (s *catalogService) Deactivate(ctx context.Context, id string) (*models.Service, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	svc, err := s.services.Deactivate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("deactivate service: %w", err)
	}
	return svc, nil
}
