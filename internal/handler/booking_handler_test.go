package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/planetnakshatra/api/internal/dto"
	"github.com/planetnakshatra/api/internal/models"
	"github.com/planetnakshatra/api/internal/service"
	"github.com/planetnakshatra/api/internal/validation"
	"github.com/stretchr/testify/assert"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn       func(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error)
	availabilityFn func(ctx context.Context, dateStr, serviceID string) (*dto.AvailabilityResponse, error)
	listFn         func(ctx context.Context) ([]models.Booking, error)
	getFn          func(ctx context.Context, id string) (*models.Booking, error)
}

func (m *mockBookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
	return m.createFn(ctx, req)
}
func (m *mockBookingService) Availability(ctx context.Context, dateStr, serviceID string) (*dto.AvailabilityResponse, error) {
	return m.availabilityFn(ctx, dateStr, serviceID)
}
func (m *mockBookingService) List(ctx context.Context) ([]models.Booking, error) {
	return m.listFn(ctx)
}
func (m *mockBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return m.getFn(ctx, id)
}

const validBookingBody = `{
	"serviceId": "0b6a8a3e-2a4f-4d3e-9b5a-7c2f1e8d4a6b",
	"userEmail": "priya@example.com",
	"userName": "Priya Sharma",
	"bookingDate": "2026-03-11",
	"bookingTime": "10:00"
}`

// --- Tests ---

func TestCreateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
			return &models.Booking{
				ID:          "booking-1",
				ServiceID:   req.ServiceID,
				UserEmail:   req.UserEmail,
				UserName:    req.UserName,
				BookingTime: req.BookingTime,
				Status:      models.StatusConfirmed,
				CreatedAt:   time.Now(),
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validBookingBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc, validation.New())
	err := h.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Booking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, models.StatusConfirmed, resp.Status)
	assert.Equal(t, "priya@example.com", resp.UserEmail)
}

func TestCreateBooking_Handler_InvalidBody(t *testing.T) {
	e := echo.New()
	body := `{"serviceId": "not-a-uuid", "userEmail": "priya@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(nil, validation.New())
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_BadTimeFormat(t *testing.T) {
	e := echo.New()
	body := strings.Replace(validBookingBody, `"10:00"`, `"10am"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(nil, validation.New())
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_ServiceNotFound(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
			return nil, service.ErrServiceNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validBookingBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc, validation.New())
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCreateBooking_Handler_PastDate(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
			return nil, service.ErrPastDate
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validBookingBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc, validation.New())
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_SlotTaken(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
			return nil, service.ErrSlotTaken
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validBookingBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc, validation.New())
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateBooking_Handler_SlotBusy(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
			return nil, service.ErrSlotBusy
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validBookingBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc, validation.New())
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestGetAvailability_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		availabilityFn: func(ctx context.Context, dateStr, serviceID string) (*dto.AvailabilityResponse, error) {
			return &dto.AvailabilityResponse{
				Date:           dateStr,
				AvailableSlots: []string{"09:00", "09:30"},
				BookedSlots:    []string{"10:00"},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/availability?date=2026-03-11", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc, validation.New())
	err := h.GetAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AvailabilityResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-11", resp.Date)
	assert.Len(t, resp.AvailableSlots, 2)
	assert.Equal(t, []string{"10:00"}, resp.BookedSlots)
}

func TestGetAvailability_Handler_InvalidDate(t *testing.T) {
	svc := &mockBookingService{
		availabilityFn: func(ctx context.Context, dateStr, serviceID string) (*dto.AvailabilityResponse, error) {
			return nil, service.ErrInvalidDate
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/availability?date=bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc, validation.New())
	err := h.GetAvailability(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getFn: func(ctx context.Context, id string) (*models.Booking, error) {
			return nil, service.ErrBookingNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewBookingHandler(svc, validation.New())
	err := h.GetBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListBookings_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		listFn: func(ctx context.Context) ([]models.Booking, error) {
			return []models.Booking{
				{ID: "booking-1", Status: models.StatusConfirmed},
				{ID: "booking-2", Status: models.StatusPending},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc, validation.New())
	err := h.ListBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Booking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
