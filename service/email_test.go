package service

import (
	"testing"

	"expensetracker/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateNotificationBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateNotificationBody("You spent $120 on Travel this week.")
	assert.Contains(t, body, "You spent $120 on Travel this week.")
	assert.Contains(t, body, "Expense Tracker Notification")
}

func TestSendNotificationDisabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendNotification("user@example.com", "hi", "message")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestSendTestEmailDisabled(t *testing.T) {
	s := newTestEmailService()
	assert.Error(t, s.SendTestEmail("user@example.com"))
}
