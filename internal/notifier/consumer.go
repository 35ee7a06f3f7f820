package notifier

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/planetnakshatra/api/internal/mailer"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailConsumer drains the notification queue and turns booking messages into
// the client confirmation and admin alert emails.
type EmailConsumer struct {
	sender     mailer.Sender
	adminEmail string
}

func NewEmailConsumer(sender mailer.Sender, adminEmail string) *EmailConsumer {
	return &EmailConsumer{sender: sender, adminEmail: adminEmail}
}

func (ec *EmailConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			if err := ec.handle(msg.Body); err != nil {
				log.Printf("[notifier] dropping notification message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
		log.Println("[notifier] channel closed, stopping email consumer")
	}()
}

// handle decodes one queued notification and sends the emails. Send failures
// are logged inside sendBookingEmails and do not requeue the message; only an
// undecodable payload is an error.
func (ec *EmailConsumer) handle(body []byte) error {
	var n BookingNotification
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("unmarshal booking notification: %w", err)
	}
	sendBookingEmails(ec.sender, ec.adminEmail, n)
	return nil
}
