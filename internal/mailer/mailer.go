package mailer

import (
	"fmt"
	"time"

	mail "github.com/go-mail/mail/v2"
)

// Mailer sends plain-text mail over SMTP. It is the notifier collaborator
// for signup confirmation codes.
type Mailer interface {
	Send(recipient, subject, body string) error
}

type smtpMailer struct {
	dialer *mail.Dialer
	sender string
}

// New creates an SMTP-backed mailer.
func New(host string, port int, username, password, sender string) Mailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second
	return &smtpMailer{
		dialer: dialer,
		sender: sender,
	}
}

// Send delivers a single message synchronously.
func (m *smtpMailer) Send(recipient, subject, body string) error {
	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipient, err)
	}
	return nil
}
