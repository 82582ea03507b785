package api

import (
	"strconv"
	"time"

	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves expense CRUD and grouping endpoints.
type ExpenseHandler struct{}

// NewExpenseHandler creates an expense handler.
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest is the create payload. Amount is a pointer so an
// explicit 0 survives the required check.
type CreateExpenseRequest struct {
	Title       string   `json:"title" binding:"required,max=100" example:"Lunch"`
	Amount      *float64 `json:"amount" binding:"required,gte=0" example:"12.50"`
	Category    string   `json:"category" binding:"max=50" example:"Food & Dining"`
	Description string   `json:"description" binding:"max=255" example:"Sandwich and coffee"`
	Date        string   `json:"date" binding:"required" example:"2026-03-15"`
}

// UpdateExpenseRequest is the partial update payload; nil/empty fields are
// left untouched.
type UpdateExpenseRequest struct {
	Title       string   `json:"title" binding:"max=100" example:"Lunch"`
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0" example:"12.50"`
	Category    string   `json:"category" binding:"max=50" example:"Food & Dining"`
	Description string   `json:"description" binding:"max=255" example:"Sandwich and coffee"`
	Date        string   `json:"date" example:"2026-03-15"`
}

// ExpenseListRequest are the list query parameters.
type ExpenseListRequest struct {
	Page      int    `form:"page" example:"1"`
	PageSize  int    `form:"page_size" example:"10"`
	Category  string `form:"category" example:"Food & Dining"`
	StartDate string `form:"start_date" example:"2026-01-01"`
	EndDate   string `form:"end_date" example:"2026-12-31"`
}

const dateLayout = "2006-01-02"

// Create records a new expense
// @Summary Create expense
// @Description Record a new expense owned by the current user. The owner is
// @Description always taken from the session, never from the payload.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "expense payload"
// @Success 200 {object} Response{data=models.Expense} "created"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		BadRequest(c, "invalid date, expected format: 2006-01-02")
		return
	}

	expense := models.Expense{
		UserID:      userID,
		Title:       req.Title,
		Amount:      *req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create expense"))
		return
	}

	SuccessWithMessage(c, "created", expense)
}

// List returns the current user's expenses
// @Summary List expenses
// @Description List the current user's expenses, most recent date first,
// @Description with optional pagination and category/date filters. An empty
// @Description result is a success, not an error.
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number" default(1)
// @Param page_size query int false "page size" default(10)
// @Param category query string false "category filter"
// @Param start_date query string false "start date (2026-01-01)"
// @Param end_date query string false "end date (2026-12-31)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Expense}} "ok"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Expense{}).Where("user_id = ?", userID)

	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.StartDate != "" {
		if start, err := time.ParseInLocation(dateLayout, req.StartDate, time.Local); err == nil {
			query = query.Where("date >= ?", start)
		}
	}
	if req.EndDate != "" {
		if end, err := time.ParseInLocation(dateLayout, req.EndDate, time.Local); err == nil {
			// include the end date itself
			end = end.Add(24*time.Hour - time.Second)
			query = query.Where("date <= ?", end)
		}
	}

	var total int64
	query.Count(&total)

	var expenses []models.Expense
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("date DESC").Offset(offset).Limit(req.PageSize).Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     expenses,
	})
}

// Get returns one expense
// @Summary Get expense
// @Description Fetch a single expense owned by the current user
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "expense id"
// @Success 200 {object} Response{data=models.Expense} "ok"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		NotFound(c, "expense not found")
		return
	}

	Success(c, expense)
}

// Update applies a partial update
// @Summary Update expense
// @Description Partially update an expense. Ownership is verified: a
// @Description record belonging to another user reads as not found.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "expense id"
// @Param request body UpdateExpenseRequest true "fields to change"
// @Success 200 {object} Response{data=models.Expense} "updated"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		NotFound(c, "expense not found")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Date != "" {
		date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
		if err != nil {
			BadRequest(c, "invalid date, expected format: 2006-01-02")
			return
		}
		updates["date"] = date
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "update failed"))
			return
		}
	}

	// reload the stored record
	database.DB.First(&expense, expense.ID)
	SuccessWithMessage(c, "updated", expense)
}

// Delete removes an expense
// @Summary Delete expense
// @Description Delete an expense owned by the current user
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "expense id"
// @Success 200 {object} Response "deleted"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		NotFound(c, "expense not found")
		return
	}

	if err := database.DB.Delete(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "delete failed"))
		return
	}

	SuccessWithMessage(c, "deleted", nil)
}

// CategoryTotal is one row of the by-category grouping.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// GroupByCategory sums the user's expenses per category
// @Summary Expenses grouped by category
// @Description Return a per-category amount sum for the current user.
// @Description Records without a category are reported as "Uncategorized".
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]CategoryTotal} "ok"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/expenses/by-category [get]
func (h *ExpenseHandler) GroupByCategory(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var rows []CategoryTotal
	if err := database.DB.Model(&models.Expense{}).
		Select("category, SUM(amount) as amount").
		Where("user_id = ?", userID).
		Group("category").
		Order("amount DESC").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	// fold the empty-category group into "Uncategorized"
	totals := make([]CategoryTotal, 0, len(rows))
	uncategorized := -1
	for _, row := range rows {
		if row.Category == "" {
			row.Category = models.CategoryUncategorized
		}
		if row.Category == models.CategoryUncategorized {
			if uncategorized >= 0 {
				totals[uncategorized].Amount += row.Amount
				continue
			}
			uncategorized = len(totals)
		}
		totals = append(totals, row)
	}

	Success(c, totals)
}

// GetCategories lists the available category labels
// @Summary List categories
// @Description Available categories in display order, with badge colors
// @Tags expenses
// @Produce json
// @Success 200 {object} Response{data=[]models.ExpenseCategory} "ok"
// @Failure 500 {object} Response "query failed"
// @Router /api/v1/categories [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	var list []models.ExpenseCategory
	if err := database.DB.Order("sort ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}
