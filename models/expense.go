package models

import (
	"time"
)

// Expense is a single user-owned spending entry.
// UserID is always taken from the authenticated session and never changes
// after creation.
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category    string    `json:"category" gorm:"size:50"`
	Description string    `json:"description" gorm:"size:255"`
	Date        time.Time `json:"date" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Expense) TableName() string {
	return "expenses"
}

// CategoryUncategorized is the grouping key used for expenses stored
// without a category.
const CategoryUncategorized = "Uncategorized"

// Default expense categories.
const (
	CategoryFood          = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryBills         = "Bills & Utilities"
	CategoryHealthcare    = "Healthcare"
	CategoryTravel        = "Travel"
	CategoryEducation     = "Education"
	CategoryOther         = "Other"
)

// DefaultCategories returns the built-in category labels in display order.
func DefaultCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealthcare,
		CategoryTravel,
		CategoryEducation,
		CategoryOther,
	}
}
