package repositories

import (
	"time"

	"finance-server/db"
	"finance-server/entities"

	"gorm.io/gorm"
)

type incomePgRepository struct {
	db db.Database
}

func NewIncomePgRepository(database db.Database) IncomeRepository {
	return &incomePgRepository{db: database}
}

func (r *incomePgRepository) Create(income *entities.Income) error {
	return r.db.GetDB().Create(income).Error
}

func (r *incomePgRepository) GetByID(id, userID string) (*entities.Income, error) {
	var income entities.Income
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&income).Error
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *incomePgRepository) GetAllByUser(userID string) ([]entities.Income, error) {
	var incomes []entities.Income
	err := r.db.GetDB().Where("user_id = ?", userID).Order("date DESC").Find(&incomes).Error
	return incomes, err
}

func (r *incomePgRepository) GetByDateRange(userID string, start, end time.Time) ([]entities.Income, error) {
	var incomes []entities.Income
	err := r.db.GetDB().
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&incomes).Error
	return incomes, err
}

func (r *incomePgRepository) Delete(id, userID string) error {
	result := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Income{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
