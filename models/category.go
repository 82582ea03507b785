package models

import (
	"time"
)

// ExpenseCategory is a selectable category label. The table is seeded with
// the default labels on first start; expenses store the label as plain text
// so removing a category never breaks existing records.
type ExpenseCategory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Sort      int       `json:"sort" gorm:"default:0"`
	Color     string    `json:"color" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (ExpenseCategory) TableName() string {
	return "expense_categories"
}
