// Package mailer is the SMTP transport for outgoing mail. Message content is
// composed by the notifier package; this package only delivers it.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

type Sender interface {
	Send(to, subject, htmlBody string) error
}

type SMTPSender struct {
	addr     string
	user     string
	password string
	from     string
	fromName string
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	FromName string
}

// NewSender returns an SMTP-backed Sender, or a disabled no-op sender when no
// host is configured so that notification dispatch stays harmless in
// environments without mail.
func NewSender(cfg SMTPConfig) Sender {
	if strings.TrimSpace(cfg.Host) == "" {
		log.Println("[mailer] SMTP not configured, email notifications disabled")
		return &disabledSender{}
	}
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = "noreply@planetnakshatra.com"
	}
	fromName := strings.TrimSpace(cfg.FromName)
	if fromName == "" {
		fromName = "Planet Nakshatra"
	}
	return &SMTPSender{
		addr:     fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.Host), strings.TrimSpace(cfg.Port)),
		user:     cfg.User,
		password: cfg.Password,
		from:     from,
		fromName: fromName,
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	var auth smtp.Auth
	if s.user != "" {
		host := s.addr
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", s.user, s.password, host)
	}

	msg := buildMessage(s.from, s.fromName, to, subject, htmlBody)
	if err := smtp.SendMail(s.addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	log.Printf("[mailer] email sent to %s", to)
	return nil
}

func buildMessage(from, fromName, to, subject, htmlBody string) string {
	return fmt.Sprintf(
		"From: %q <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		fromName,
		from,
		to,
		subject,
		htmlBody,
	)
}

type disabledSender struct{}

func (d *disabledSender) Send(to, subject, _ string) error {
	log.Printf("[mailer] skipping email to %s (%s): transport disabled", to, subject)
	return nil
}
