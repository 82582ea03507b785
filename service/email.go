package service

import (
	"fmt"

	"expensetracker/config"

	"gopkg.in/gomail.v2"
)

// EmailService sends notification mail over SMTP.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates an email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendNotification wraps the message in the notification shell and sends it.
func (s *EmailService) SendNotification(to, subject, message string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("email service disabled, set email.enabled=true")
	}

	return s.sendEmail(to, subject, s.generateNotificationBody(message))
}

// generateNotificationBody builds the notification HTML shell.
func (s *EmailService) generateNotificationBody(message string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #333;">Expense Tracker Notification</h2>
    <p style="color: #666; line-height: 1.6;">%s</p>
    <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
    <p style="color: #999; font-size: 12px;">
        This email was sent from your Expense Tracker application.
    </p>
</div>
`, message)
}

// sendEmail delivers a single HTML mail.
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}

// SendTestEmail verifies the SMTP configuration end to end.
func (s *EmailService) SendTestEmail(to string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("email service disabled")
	}

	body := `
<div style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>Email configuration works</h2>
    <p>If you received this mail, the SMTP settings are correct.</p>
    <p style="color: #666;">Expense Tracker</p>
</div>
`
	return s.sendEmail(to, "Expense Tracker email test", body)
}
