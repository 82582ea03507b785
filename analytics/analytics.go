// Package analytics turns expense lists into summary statistics and
// chart-ready series. Everything here is pure: no database access, and the
// reference time is an explicit argument so callers and tests control the
// clock.
package analytics

import (
	"math"
	"sort"
	"time"

	"expensetracker/models"
)

// TrendWindow is the default number of months covered by the trend series.
const TrendWindow = 6

// CategoryShare is one slice of the category breakdown.
type CategoryShare struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MonthBucket is one point of the monthly trend series.
type MonthBucket struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// Summary bundles all aggregate figures for one user's expenses.
type Summary struct {
	Total      float64         `json:"total"`
	MonthTotal float64         `json:"month_total"`
	Average    float64         `json:"average"`
	Count      int             `json:"count"`
	Categories []CategoryShare `json:"categories"`
	Trend      []MonthBucket   `json:"trend"`
}

// TotalSum returns the sum of all amounts, 0 for an empty list.
func TotalSum(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// CurrentMonthSum sums the amounts of expenses dated in the same calendar
// month and year as now.
func CurrentMonthSum(expenses []models.Expense, now time.Time) float64 {
	var total float64
	for _, e := range expenses {
		if e.Date.Month() == now.Month() && e.Date.Year() == now.Year() {
			total += e.Amount
		}
	}
	return total
}

// AverageExpense returns TotalSum divided by the record count, 0 for an
// empty list.
func AverageExpense(expenses []models.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	return TotalSum(expenses) / float64(len(expenses))
}

// CategoryBreakdown groups expenses by category and reports each group's
// total and share of the overall total, rounded to one decimal place.
// Categories are opaque strings: no case or whitespace normalization, an
// empty category groups under "Uncategorized". All shares are 0 when the
// overall total is 0. Results are ordered by total descending, name
// ascending on ties.
func CategoryBreakdown(expenses []models.Expense) []CategoryShare {
	total := TotalSum(expenses)

	byCategory := make(map[string]*CategoryShare)
	order := make([]string, 0)
	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = models.CategoryUncategorized
		}
		share, ok := byCategory[category]
		if !ok {
			share = &CategoryShare{Category: category}
			byCategory[category] = share
			order = append(order, category)
		}
		share.Total += e.Amount
		share.Count++
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, category := range order {
		share := *byCategory[category]
		if total > 0 {
			share.Percentage = math.Round(share.Total/total*1000) / 10
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Total != shares[j].Total {
			return shares[i].Total > shares[j].Total
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}

// MonthlyTrend buckets expenses into the trailing window calendar months
// ending at now's month, oldest first. Buckets are initialized to 0 before
// accumulation, so the result always has exactly window entries; expenses
// dated outside the window are excluded. Bucket labels come from
// monthLabel for both passes so matching cannot drift.
func MonthlyTrend(expenses []models.Expense, now time.Time, window int) []MonthBucket {
	if window <= 0 {
		window = TrendWindow
	}

	buckets := make([]MonthBucket, 0, window)
	index := make(map[string]int, window)
	// Anchor on the first of the month; stepping by AddDate on day 29-31
	// would skip short months.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := window - 1; i >= 0; i-- {
		label := monthLabel(anchor.AddDate(0, -i, 0))
		index[label] = len(buckets)
		buckets = append(buckets, MonthBucket{Month: label})
	}

	for _, e := range expenses {
		if i, ok := index[monthLabel(e.Date)]; ok {
			buckets[i].Amount += e.Amount
		}
	}

	return buckets
}

// monthLabel formats a bucket key like "Jan 2026".
func monthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}

// Summarize computes the full dashboard summary in one pass over the
// caller-supplied records.
func Summarize(expenses []models.Expense, now time.Time) Summary {
	return Summary{
		Total:      TotalSum(expenses),
		MonthTotal: CurrentMonthSum(expenses, now),
		Average:    AverageExpense(expenses),
		Count:      len(expenses),
		Categories: CategoryBreakdown(expenses),
		Trend:      MonthlyTrend(expenses, now, TrendWindow),
	}
}
