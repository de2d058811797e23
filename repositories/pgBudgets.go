package repositories

import (
	"time"

	"finance-server/db"
	"finance-server/entities"

	"gorm.io/gorm"
)

type budgetPgRepository struct {
	db db.Database
}

func NewBudgetPgRepository(database db.Database) BudgetRepository {
	return &budgetPgRepository{db: database}
}

func (r *budgetPgRepository) Create(budget *entities.Budget) error {
	return r.db.GetDB().Create(budget).Error
}

func (r *budgetPgRepository) GetByID(id, userID string) (*entities.Budget, error) {
	var budget entities.Budget
	err := r.db.GetDB().
		Preload("Items").
		Preload("Items.Contributors").
		Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *budgetPgRepository) GetAllByUser(userID string) ([]entities.Budget, error) {
	var budgets []entities.Budget
	err := r.db.GetDB().
		Preload("Items").
		Preload("Items.Contributors").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error
	return budgets, err
}

func (r *budgetPgRepository) Update(budget *entities.Budget) error {
	budget.UpdatedAt = time.Now().Format(time.RFC3339)
	// Items are replaced wholesale; contributors cascade with their item
	// through the foreign keys set up at migration.
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", budget.ID).Delete(&entities.BudgetItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(budget).Error
	})
}

func (r *budgetPgRepository) Delete(id, userID string) error {
	result := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Budget{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
