package repositories

import (
	"time"

	"finance-server/db"
	"finance-server/entities"

	"gorm.io/gorm"
)

type expensePgRepository struct {
	db db.Database
}

func NewExpensePgRepository(database db.Database) ExpenseRepository {
	return &expensePgRepository{db: database}
}

func (r *expensePgRepository) Create(expense *entities.Expense) error {
	return r.db.GetDB().Create(expense).Error
}

func (r *expensePgRepository) GetByID(id, userID string) (*entities.Expense, error) {
	var expense entities.Expense
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expensePgRepository) GetAllByUser(userID string) ([]entities.Expense, error) {
	var expenses []entities.Expense
	err := r.db.GetDB().Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expensePgRepository) GetByDateRange(userID string, start, end time.Time) ([]entities.Expense, error) {
	var expenses []entities.Expense
	err := r.db.GetDB().
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *expensePgRepository) Delete(id, userID string) error {
	result := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Expense{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
