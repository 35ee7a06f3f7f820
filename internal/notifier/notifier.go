// Package notifier dispatches transactional notifications for new bookings.
// Dispatch is decoupled from the request path: either through a RabbitMQ
// queue drained by an in-process consumer, or directly on a goroutine when no
// broker is configured. Failures are logged, never surfaced to the caller.
package notifier

import (
	"log"
	"time"

	"github.com/planetnakshatra/api/internal/mailer"
	"github.com/planetnakshatra/api/pkg/rabbitmq"
)

// BookingNotification carries everything needed to compose the client
// confirmation and the admin alert.
type BookingNotification struct {
	BookingID    string    `json:"bookingId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	UserPhone    string    `json:"userPhone,omitempty"`
	ServiceTitle string    `json:"serviceTitle"`
	Duration     int       `json:"duration"`
	Price        *float64  `json:"price,omitempty"`
	BookingDate  time.Time `json:"bookingDate"`
	BookingTime  string    `json:"bookingTime"`
	Notes        string    `json:"notes,omitempty"`
}

type Notifier interface {
	BookingCreated(n BookingNotification)
}

// QueueNotifier publishes booking notifications to the RabbitMQ exchange; the
// EmailConsumer turns them into mail.
type QueueNotifier struct {
	pub *rabbitmq.Publisher
}

func NewQueueNotifier(pub *rabbitmq.Publisher) *QueueNotifier {
	return &QueueNotifier{pub: pub}
}

func (q *QueueNotifier) BookingCreated(n BookingNotification) {
	if err := q.pub.Publish(rabbitmq.RouteBookingCreated, n); err != nil {
		log.Printf("[notifier] failed to publish booking %s notification: %v", n.BookingID, err)
	}
}

// DirectNotifier sends both emails on a goroutine, for deployments without a
// broker.
type DirectNotifier struct {
	sender     mailer.Sender
	adminEmail string
}

func NewDirectNotifier(sender mailer.Sender, adminEmail string) *DirectNotifier {
	return &DirectNotifier{sender: sender, adminEmail: adminEmail}
}

func (d *DirectNotifier) BookingCreated(n BookingNotification) {
	go sendBookingEmails(d.sender, d.adminEmail, n)
}

func sendBookingEmails(sender mailer.Sender, adminEmail string, n BookingNotification) {
	subject, body := composeConfirmation(n)
	if err := sender.Send(n.UserEmail, subject, body); err != nil {
		log.Printf("[notifier] booking %s: confirmation email failed: %v", n.BookingID, err)
	}

	if adminEmail == "" {
		log.Printf("[notifier] booking %s: admin email not configured, skipping alert", n.BookingID)
		return
	}
	subject, body = composeAdminAlert(n)
	if err := sender.Send(adminEmail, subject, body); err != nil {
		log.Printf("[notifier] booking %s: admin alert failed: %v", n.BookingID, err)
	}
}
