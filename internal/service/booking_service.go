package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/planetnakshatra/api/internal/calendar"
	"github.com/planetnakshatra/api/internal/dto"
	"github.com/planetnakshatra/api/internal/models"
	"github.com/planetnakshatra/api/internal/notifier"
	"github.com/planetnakshatra/api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound = errors.New("service not found or inactive")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDate     = errors.New("invalid booking date or time")
	ErrPastDate        = errors.New("booking date must be today or in the future")
	ErrSlotTaken       = errors.New("this time slot is already booked")
	ErrSlotBusy        = errors.New("this time slot is not available")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// Business day: half-hour slots from 09:00 up to (not including) 20:00.
	dayStartHour = 9
	dayEndHour   = 20
)

type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error)
	Availability(ctx context.Context, dateStr, serviceID string) (*dto.AvailabilityResponse, error)
	List(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	services repository.ServiceRepository
	users    repository.UserRepository
	cal      calendar.Client
	notify   notifier.Notifier
	loc      *time.Location
	now      func() time.Time
}

func NewBookingService(
	bookings repository.BookingRepository,
	services repository.ServiceRepository,
	users repository.UserRepository,
	cal calendar.Client,
	notify notifier.Notifier,
	loc *time.Location,
) BookingService {
	return &bookingService{
		bookings: bookings,
		services: services,
		users:    users,
		cal:      cal,
		notify:   notify,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
	svc, err := s.services.FindByID(ctx, req.ServiceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	if !svc.Active {
		return nil, ErrServiceNotFound
	}

	start, err := s.slotStart(req.BookingDate, req.BookingTime)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// Only the calendar day is compared: a same-day booking at an earlier
	// time-of-day is accepted.
	if s.startOfDay(start).Before(s.startOfDay(s.now().In(s.loc))) {
		return nil, ErrPastDate
	}

	if _, err := s.bookings.FindActiveSlot(ctx, start, req.BookingTime); err == nil {
		return nil, ErrSlotTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	end := start.Add(time.Duration(svc.Duration) * time.Minute)
	busy, err := s.cal.GetBusySlots(ctx, start, end)
	if err != nil {
		log.Printf("[booking] busy-slot query failed, proceeding without it: %v", err)
		busy = nil
	}
	if len(busy) > 0 {
		return nil, ErrSlotBusy
	}

	var phone *string
	if req.UserPhone != "" {
		phone = &req.UserPhone
	}
	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	var booking *models.Booking
	err = s.bookings.Tx(ctx, func(tx *gorm.DB) error {
		user, err := s.users.FindOrCreate(ctx, tx, req.UserEmail, req.UserName, phone)
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		booking = &models.Booking{
			UserID:      user.ID,
			UserEmail:   req.UserEmail,
			UserName:    req.UserName,
			UserPhone:   phone,
			ServiceID:   svc.ID,
			BookingDate: start,
			BookingTime: req.BookingTime,
			Status:      models.StatusPending,
			Notes:       notes,
		}
		if err := s.bookings.Create(ctx, tx, booking); err != nil {
			// The partial unique index on (booking_date, booking_time)
			// closes the race between the slot check above and this insert.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Calendar sync failure is non-fatal: the seat stays reserved internally
	// and the booking simply remains PENDING.
	eventID, calErr := s.cal.CreateEvent(ctx, calendar.Event{
		Summary:       fmt.Sprintf("%s - %s", svc.Title, req.UserName),
		Description:   eventDescription(svc.Title, req),
		Start:         start,
		End:           end,
		AttendeeEmail: req.UserEmail,
		AttendeeName:  req.UserName,
	})
	if calErr != nil {
		log.Printf("[booking] calendar sync failed for booking %s, leaving PENDING: %v", booking.ID, calErr)
	} else if err := s.bookings.SetConfirmed(ctx, booking.ID, eventID); err != nil {
		log.Printf("[booking] failed to confirm booking %s: %v", booking.ID, err)
	} else {
		booking.Status = models.StatusConfirmed
		booking.GoogleEventID = &eventID
	}

	s.notify.BookingCreated(notifier.BookingNotification{
		BookingID:    booking.ID,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPhone:    req.UserPhone,
		ServiceTitle: svc.Title,
		Duration:     svc.Duration,
		Price:        svc.Price,
		BookingDate:  start,
		BookingTime:  req.BookingTime,
		Notes:        req.Notes,
	})

	if full, err := s.bookings.FindByID(ctx, booking.ID); err == nil {
		return full, nil
	}
	booking.Service = svc
	return booking, nil
}

func (s *bookingService) Availability(ctx context.Context, dateStr, serviceID string) (*dto.AvailabilityResponse, error) {
	day := s.now().In(s.loc)
	if dateStr != "" {
		parsed, err := time.ParseInLocation(dateLayout, dateStr, s.loc)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = parsed
	}
	dayStart := s.startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.bookings.FindForDay(ctx, dayStart, dayEnd, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list bookings for day: %w", err)
	}

	booked := make([]string, 0, len(bookings))
	bookedSet := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		booked = append(booked, b.BookingTime)
		bookedSet[b.BookingTime] = true
	}

	busy, err := s.cal.GetBusySlots(ctx, dayStart, dayEnd)
	if err != nil {
		log.Printf("[booking] busy-slot query failed, availability may overreport: %v", err)
		busy = nil
	}

	// Only the slot's start instant is tested against busy intervals; a slot
	// that starts free but runs into one is still offered.
	available := make([]string, 0, (dayEndHour-dayStartHour)*2)
	for hour := dayStartHour; hour < dayEndHour; hour++ {
		for minute := 0; minute < 60; minute += 30 {
			slot := fmt.Sprintf("%02d:%02d", hour, minute)
			if bookedSet[slot] {
				continue
			}
			instant := dayStart.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
			if inBusyInterval(instant, busy) {
				continue
			}
			available = append(available, slot)
		}
	}

	return &dto.AvailabilityResponse{
		Date:           dayStart.Format(dateLayout),
		AvailableSlots: available,
		BookedSlots:    booked,
	}, nil
}

func (s *bookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.FindAll(ctx)
}

func (s *bookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) slotStart(dateStr, timeStr string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, s.loc)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, s.loc), nil
}

func (s *bookingService) startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

// inBusyInterval reports whether t falls inside any half-open [Start, End).
func inBusyInterval(t time.Time, busy []calendar.BusyInterval) bool {
	for _, b := range busy {
		if !t.Before(b.Start) && t.Before(b.End) {
			return true
		}
	}
	return false
}

func eventDescription(serviceTitle string, req *dto.CreateBookingRequest) string {
	phone := req.UserPhone
	if phone == "" {
		phone = "N/A"
	}
	return fmt.Sprintf("Booking for %s\n\nClient: %s\nEmail: %s\nPhone: %s\n\n%s",
		serviceTitle, req.UserName, req.UserEmail, phone, req.Notes)
}
