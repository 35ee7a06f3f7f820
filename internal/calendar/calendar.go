// Package calendar talks to the advisor's external calendar. The booking
// workflow only depends on the Client interface; the Google implementation
// lives in google.go.
package calendar

import (
	"context"
	"time"
)

// BusyInterval is a half-open [Start, End) span during which the advisor is
// unavailable.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

type Event struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
	AttendeeName  string
}

type Client interface {
	GetBusySlots(ctx context.Context, start, end time.Time) ([]BusyInterval, error)
	CreateEvent(ctx context.Context, event Event) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
