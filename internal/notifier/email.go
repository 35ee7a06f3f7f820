package notifier

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "Monday, January 2, 2006"

func composeConfirmation(n BookingNotification) (subject, body string) {
	date := n.BookingDate.Format(dateLayout)
	subject = fmt.Sprintf("Booking Confirmed: %s - %s", n.ServiceTitle, date)

	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<h1>Booking Confirmed</h1>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", n.UserName)
	b.WriteString("<p>Thank you for booking a consultation with Planet Nakshatra. Your appointment has been confirmed!</p>")
	b.WriteString("<h2>Booking Details</h2><ul>")
	fmt.Fprintf(&b, "<li><b>Service:</b> %s</li>", n.ServiceTitle)
	fmt.Fprintf(&b, "<li><b>Date:</b> %s</li>", date)
	fmt.Fprintf(&b, "<li><b>Time:</b> %s - %s</li>", n.BookingTime, endTime(n.BookingTime, n.Duration))
	fmt.Fprintf(&b, "<li><b>Duration:</b> %d minutes</li>", n.Duration)
	if n.Price != nil {
		fmt.Fprintf(&b, "<li><b>Price:</b> ₹%.0f</li>", *n.Price)
	}
	if n.Notes != "" {
		fmt.Fprintf(&b, "<li><b>Notes:</b> %s</li>", n.Notes)
	}
	b.WriteString("</ul>")
	b.WriteString("<p>If you need to reschedule or cancel, please contact us as soon as possible.</p>")
	b.WriteString("<p>Best regards,<br>Planet Nakshatra</p>")
	b.WriteString("</body></html>")

	return subject, b.String()
}

func composeAdminAlert(n BookingNotification) (subject, body string) {
	date := n.BookingDate.Format(dateLayout)
	subject = fmt.Sprintf("New Booking: %s - %s at %s", n.UserName, date, n.BookingTime)

	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString("<h1>New Booking Alert</h1>")
	b.WriteString("<h2>Client Information</h2><ul>")
	fmt.Fprintf(&b, "<li><b>Name:</b> %s</li>", n.UserName)
	fmt.Fprintf(&b, "<li><b>Email:</b> %s</li>", n.UserEmail)
	if n.UserPhone != "" {
		fmt.Fprintf(&b, "<li><b>Phone:</b> %s</li>", n.UserPhone)
	}
	b.WriteString("</ul><h2>Booking Details</h2><ul>")
	fmt.Fprintf(&b, "<li><b>Service:</b> %s</li>", n.ServiceTitle)
	fmt.Fprintf(&b, "<li><b>Date:</b> %s</li>", date)
	fmt.Fprintf(&b, "<li><b>Time:</b> %s - %s</li>", n.BookingTime, endTime(n.BookingTime, n.Duration))
	fmt.Fprintf(&b, "<li><b>Duration:</b> %d minutes</li>", n.Duration)
	if n.Price != nil {
		fmt.Fprintf(&b, "<li><b>Price:</b> ₹%.0f</li>", *n.Price)
	}
	if n.Notes != "" {
		fmt.Fprintf(&b, "<li><b>Notes:</b> %s</li>", n.Notes)
	}
	b.WriteString("</ul></body></html>")

	return subject, b.String()
}

// endTime renders the slot end as "HH:MM" given the start and duration.
func endTime(start string, durationMinutes int) string {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return start
	}
	return t.Add(time.Duration(durationMinutes) * time.Minute).Format("15:04")
}
