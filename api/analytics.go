package api

import (
	"time"

	"expensetracker/analytics"
	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"

	"github.com/gin-gonic/gin"
)

// GetAnalytics returns the dashboard summary
// @Summary Expense analytics
// @Description Aggregate the current user's expenses: overall and
// @Description current-month totals, average, per-category breakdown with
// @Description percentages, and a trailing six-month trend.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=analytics.Summary} "ok"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/expenses/analytics [get]
func (h *ExpenseHandler) GetAnalytics(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var expenses []models.Expense
	if err := database.DB.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	Success(c, analytics.Summarize(expenses, time.Now()))
}
