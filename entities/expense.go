package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ExpenseCategories = []string{"Food", "Transport", "Entertainment", "Shopping", "Bills"}

type Expense struct {
	ID          string    `gorm:"type:text;primaryKey" json:"_id"`
	UserID      string    `gorm:"index;not null" json:"userId"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now().Format(time.RFC3339)
	e.UpdatedAt = e.CreatedAt
	return
}

func ValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}
