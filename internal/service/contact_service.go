package service

import (
	"context"
	"fmt"

	"github.com/planetnakshatra/api/internal/dto"
	"github.com/planetnakshatra/api/internal/models"
	"github.com/planetnakshatra/api/internal/repository"
	"gorm.io/gorm"
)

type ContactService interface {
	Create(ctx context.Context, req *dto.CreateContactRequest) (*models.ContactInquiry, error)
	List(ctx context.Context) ([]models.ContactInquiry, error)
}

type contactService struct {
	contacts repository.ContactRepository
	users    repository.UserRepository
}

func NewContactService(contacts repository.ContactRepository, users repository.UserRepository) ContactService {
	return &contactService{contacts: contacts, users: users}
}

func (s *contactService) Create(ctx context.Context, req *dto.CreateContactRequest) (*models.ContactInquiry, error) {
	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	var inquiry *models.ContactInquiry
	err := s.contacts.Tx(ctx, func(tx *gorm.DB) error {
		user, err := s.users.FindOrCreate(ctx, tx, req.Email, req.Name, phone)
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		inquiry = &models.ContactInquiry{
			UserID:  user.ID,
			Name:    req.Name,
			Email:   req.Email,
			Phone:   phone,
			Message: req.Message,
			Status:  models.InquiryNew,
		}
		if err := s.contacts.Create(ctx, tx, inquiry); err != nil {
			return fmt.Errorf("create inquiry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if full, err := s.contacts.FindByID(ctx, inquiry.ID); err == nil {
		return full, nil
	}
	return inquiry, nil
}

func (s *contactService) List(ctx context.Context) ([]models.ContactInquiry, error) {
	return s.contacts.FindAll(ctx)
}
