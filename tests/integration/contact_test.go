//go:build integration

package integration

import (
	"testing"

	"github.com/planetnakshatra/api/internal/dto"
	"github.com/planetnakshatra/api/internal/models"
	"github.com/planetnakshatra/api/internal/repository"
	"github.com/planetnakshatra/api/internal/service"
	"github.com/planetnakshatra/api/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactService() service.ContactService {
	return service.NewContactService(
		repository.NewContactRepository(testDB),
		repository.NewUserRepository(testDB),
	)
}

func TestContactInquiryCreatesUser(t *testing.T) {
	cleanTables()
	contacts := newContactService()

	inquiry, err := contacts.Create(t.Context(), &dto.CreateContactRequest{
		Name:    "Arjun Mehta",
		Email:   "arjun@example.com",
		Message: "Interested in a vastu consultation.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InquiryNew, inquiry.Status)

	var user models.User
	require.NoError(t, testDB.Where("email = ?", "arjun@example.com").First(&user).Error)
	assert.Equal(t, user.ID, inquiry.UserID)
}

func TestRepeatedInquiriesShareOneUser(t *testing.T) {
	cleanTables()
	contacts := newContactService()

	for i := 0; i < 3; i++ {
		_, err := contacts.Create(t.Context(), &dto.CreateContactRequest{
			Name:    "Arjun Mehta",
			Email:   "arjun@example.com",
			Message: "Follow-up question.",
		})
		require.NoError(t, err)
	}

	var users int64
	testDB.Model(&models.User{}).Where("email = ?", "arjun@example.com").Count(&users)
	assert.Equal(t, int64(1), users)

	var inquiries int64
	testDB.Model(&models.ContactInquiry{}).Count(&inquiries)
	assert.Equal(t, int64(3), inquiries)
}

func TestSeedServicesIsIdempotent(t *testing.T) {
	cleanTables()

	require.NoError(t, database.SeedServices(testDB))
	require.NoError(t, database.SeedServices(testDB))

	var count int64
	testDB.Model(&models.Service{}).Count(&count)
	assert.Equal(t, int64(11), count)

	var svc models.Service
	require.NoError(t, testDB.Where("title = ?", "The Inner Circle Retainer™").First(&svc).Error)
	assert.True(t, svc.Active)
	assert.Equal(t, 120, svc.Duration)
}
