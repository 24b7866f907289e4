// Package email sends notification mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"fixmylab/internal/shared/config"
)

// SMTPMailer delivers HTML mail through a single SMTP account. It satisfies
// the notification service's Mailer interface.
type SMTPMailer struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg *config.EmailConfig) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPMailer{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (s *SMTPMailer) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
