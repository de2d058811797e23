package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var IncomeCategories = []string{"Salary", "Investments", "Rental income", "Other"}

type Income struct {
	ID          string    `gorm:"type:text;primaryKey" json:"_id"`
	UserID      string    `gorm:"index;not null" json:"userId"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

func (i *Income) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	i.CreatedAt = time.Now().Format(time.RFC3339)
	i.UpdatedAt = i.CreatedAt
	return
}

func ValidIncomeCategory(category string) bool {
	for _, c := range IncomeCategories {
		if c == category {
			return true
		}
	}
	return false
}
