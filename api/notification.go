package api

import (
	"expensetracker/config"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the ad-hoc email notification endpoint.
type NotificationHandler struct {
	emailService *service.EmailService
}

// NewNotificationHandler creates a notification handler.
func NewNotificationHandler(cfg *config.Config) *NotificationHandler {
	return &NotificationHandler{
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// NotificationRequest is the send payload.
type NotificationRequest struct {
	Email   string `json:"email" binding:"required,email" example:"user@example.com"`
	Subject string `json:"subject" binding:"required,max=200" example:"Weekly summary"`
	Message string `json:"message" binding:"required" example:"You spent $120 on Travel this week."`
}

// Send delivers a notification email
// @Summary Send notification
// @Description Send an ad-hoc notification email. A provider-reported
// @Description failure returns 400 with the provider message.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NotificationRequest true "notification payload"
// @Success 200 {object} Response "sent"
// @Failure 400 {object} Response "invalid payload or provider error"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 500 {object} Response "unexpected failure"
// @Router /api/v1/notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	if err := h.emailService.SendNotification(req.Email, req.Subject, req.Message); err != nil {
		BadRequest(c, err.Error())
		return
	}

	SuccessWithMessage(c, "notification sent", nil)
}
