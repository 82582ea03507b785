package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves expense export endpoints.
type ExportHandler struct{}

// NewExportHandler creates an export handler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRange parses the required date range and loads the user's expenses
// inside it, newest first.
func exportRange(c *gin.Context) ([]models.Expense, string, string, bool) {
	userID := middleware.GetCurrentUserID(c)

	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if startStr == "" || endStr == "" {
		BadRequest(c, "start_date and end_date are required")
		return nil, "", "", false
	}

	start, err := time.ParseInLocation(dateLayout, startStr, time.Local)
	if err != nil {
		BadRequest(c, "invalid start_date, expected format: 2006-01-02")
		return nil, "", "", false
	}

	end, err := time.ParseInLocation(dateLayout, endStr, time.Local)
	if err != nil {
		BadRequest(c, "invalid end_date, expected format: 2006-01-02")
		return nil, "", "", false
	}
	// include the end date itself
	end = end.Add(24*time.Hour - time.Second)

	var expenses []models.Expense
	if err := database.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return nil, "", "", false
	}

	return expenses, startStr, endStr, true
}

// ExportCSV exports expenses as CSV
// @Summary Export expenses as CSV
// @Description Export the current user's expenses in a date range as a CSV file
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string true "start date (2026-01-01)"
// @Param end_date query string true "end date (2026-12-31)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} Response "invalid parameters"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, startStr, endStr, ok := exportRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Title", "Amount", "Category", "Description", "Date", "Created At"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "failed to build CSV")
		return
	}

	for _, expense := range expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			expense.Title,
			fmt.Sprintf("%.2f", expense.Amount),
			expense.Category,
			expense.Description,
			expense.Date.Format(dateLayout),
			expense.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "failed to build CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "failed to build CSV")
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.csv", startStr, endStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON exports expenses as JSON
// @Summary Export expenses as JSON
// @Description Export the current user's expenses in a date range with totals
// @Tags export
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "start date (2026-01-01)"
// @Param end_date query string true "end date (2026-12-31)"
// @Success 200 {object} Response{data=[]models.Expense} "ok"
// @Failure 400 {object} Response "invalid parameters"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	expenses, startStr, endStr, ok := exportRange(c)
	if !ok {
		return
	}

	var totalAmount float64
	for _, expense := range expenses {
		totalAmount += expense.Amount
	}

	Success(c, gin.H{
		"start_date":   startStr,
		"end_date":     endStr,
		"total_count":  len(expenses),
		"total_amount": totalAmount,
		"expenses":     expenses,
	})
}

// ExportXLSX exports expenses as an Excel workbook
// @Summary Export expenses as XLSX
// @Description Export the current user's expenses in a date range as an Excel file
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_date query string true "start date (2026-01-01)"
// @Param end_date query string true "end date (2026-12-31)"
// @Success 200 {file} file "XLSX file"
// @Failure 400 {object} Response "invalid parameters"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	expenses, startStr, endStr, ok := exportRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Expenses"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "Title", "Amount", "Category", "Description", "Date", "Created At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", "G1", headerStyle)

	var totalAmount float64
	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.Date.Format(dateLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), expense.CreatedAt.Format("2006-01-02 15:04:05"))
		totalAmount += expense.Amount
	}

	summaryRow := len(expenses) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), totalAmount)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "D", "E", 20)
	f.SetColWidth(sheetName, "F", "G", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "failed to build workbook")
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
