package repositories

import (
	"time"

	"finance-server/db"
	"finance-server/entities"

	"gorm.io/gorm"
)

type reminderPgRepository struct {
	db db.Database
}

func NewReminderPgRepository(database db.Database) ReminderRepository {
	return &reminderPgRepository{db: database}
}

func (r *reminderPgRepository) Create(reminder *entities.Reminder) error {
	return r.db.GetDB().Create(reminder).Error
}

func (r *reminderPgRepository) GetByID(id, userID string) (*entities.Reminder, error) {
	var reminder entities.Reminder
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderPgRepository) GetAllByUser(userID string) ([]entities.Reminder, error) {
	var reminders []entities.Reminder
	err := r.db.GetDB().Where("user_id = ?", userID).Order("due_date ASC").Find(&reminders).Error
	return reminders, err
}

func (r *reminderPgRepository) Update(reminder *entities.Reminder) error {
	reminder.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(reminder).Error
}

func (r *reminderPgRepository) Delete(id, userID string) error {
	result := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Reminder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reminderPgRepository) Open(now time.Time) ([]entities.Reminder, error) {
	var reminders []entities.Reminder
	err := r.db.GetDB().
		Where("completed = ? AND due_date > ?", false, now).
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderPgRepository) Overdue(now time.Time) ([]entities.Reminder, error) {
	var reminders []entities.Reminder
	err := r.db.GetDB().
		Where("completed = ? AND due_date < ?", false, now).
		Find(&reminders).Error
	return reminders, err
}
