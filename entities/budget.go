package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BudgetStatusPlanning  = "planning"
	BudgetStatusOngoing   = "ongoing"
	BudgetStatusCompleted = "completed"
)

var BudgetItemCategories = []string{
	"essentials",
	"housing",
	"transportation",
	"food",
	"utilities",
	"insurance",
	"healthcare",
	"entertainment",
	"education",
	"personal",
	"debt",
	"savings",
	"other",
}

type Contributor struct {
	ID           string  `gorm:"type:text;primaryKey" json:"_id"`
	BudgetItemID string  `gorm:"index;not null" json:"-"`
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `json:"email"`
	Contribution float64 `gorm:"not null" json:"contribution"`
}

func (c *Contributor) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

type BudgetItem struct {
	ID              string        `gorm:"type:text;primaryKey" json:"_id"`
	BudgetID        string        `gorm:"index;not null" json:"-"`
	Name            string        `gorm:"not null" json:"name"`
	Category        string        `gorm:"not null" json:"category"`
	EstimatedAmount float64       `gorm:"not null" json:"estimatedAmount"`
	ActualAmount    float64       `json:"actualAmount"`
	Contributors    []Contributor `gorm:"foreignKey:BudgetItemID;constraint:OnDelete:CASCADE" json:"contributors"`
}

func (i *BudgetItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}

type Budget struct {
	ID          string       `gorm:"type:text;primaryKey" json:"_id"`
	UserID      string       `gorm:"index;not null" json:"userId"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	StartDate   time.Time    `gorm:"not null" json:"startDate"`
	EndDate     time.Time    `gorm:"not null" json:"endDate"`
	TotalBudget float64      `json:"totalBudget"`
	Status      string       `gorm:"not null;default:planning" json:"status"`
	Items       []BudgetItem `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now().Format(time.RFC3339)
	b.UpdatedAt = b.CreatedAt
	return
}

// ComputeTotal is the one source of truth for TotalBudget: the sum of
// the items' estimated amounts. Client-supplied totals are discarded.
func (b *Budget) ComputeTotal() float64 {
	var total float64
	for _, item := range b.Items {
		total += item.EstimatedAmount
	}
	return total
}

func ValidBudgetStatus(status string) bool {
	return status == BudgetStatusPlanning || status == BudgetStatusOngoing || status == BudgetStatusCompleted
}

func ValidBudgetItemCategory(category string) bool {
	for _, c := range BudgetItemCategories {
		if c == category {
			return true
		}
	}
	return false
}
