package service

import (
	"github.com/mwasawell/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers a single plain-text message. Implementations must be safe
// for concurrent use; test code substitutes a recorder.
type Mailer interface {
	Send(subject, body, from string, to []string) error
}

// SMTPMailer sends through the configured SMTP relay. Connection timeouts are
// the dialer's concern; callers treat any returned error as a soft failure.
type SMTPMailer struct {
	cfg config.MailConfig
}

// NewSMTPMailer constructs an SMTPMailer.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send dials the relay and delivers one message.
func (m *SMTPMailer) Send(subject, body, from string, to []string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}
