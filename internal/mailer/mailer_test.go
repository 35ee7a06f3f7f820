package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("noreply@planetnakshatra.com", "Planet Nakshatra",
		"priya@example.com", "Booking Confirmed", "<html><body>hi</body></html>")

	assert.True(t, strings.HasPrefix(msg, `From: "Planet Nakshatra" <noreply@planetnakshatra.com>`+"\r\n"))
	assert.Contains(t, msg, "To: priya@example.com\r\n")
	assert.Contains(t, msg, "Subject: Booking Confirmed\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=utf-8\r\n")
	assert.Contains(t, msg, "\r\n\r\n<html><body>hi</body></html>")
}

func TestNewSender_DisabledWithoutHost(t *testing.T) {
	sender := NewSender(SMTPConfig{})

	_, ok := sender.(*disabledSender)
	assert.True(t, ok)
	assert.NoError(t, sender.Send("priya@example.com", "subject", "body"))
}

func TestNewSender_DefaultsFromAddress(t *testing.T) {
	sender := NewSender(SMTPConfig{Host: "smtp.example.com", Port: "587"})

	smtpSender, ok := sender.(*SMTPSender)
	assert.True(t, ok)
	assert.Equal(t, "smtp.example.com:587", smtpSender.addr)
	assert.Equal(t, "noreply@planetnakshatra.com", smtpSender.from)
	assert.Equal(t, "Planet Nakshatra", smtpSender.fromName)
}
