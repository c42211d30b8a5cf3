package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"corpsbank/internal/shared/config"
)

// SMTPSender delivers plain-text messages through the configured SMTP relay.
type SMTPSender struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPSender{
		config: cfg,
		dialer: dialer,
	}
}

// Send delivers a plain-text message to the recipient.
func (s *SMTPSender) Send(recipient, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
