package repositories

import (
	"time"

	"finance-server/entities"
)

type UserRepository interface {
	Create(user *entities.User) error
	// GetByID loads a user without the password hash column.
	GetByID(id string) (*entities.User, error)
	// GetByEmailWithHash loads a user by email (case-insensitive)
	// including the password hash, for credential checks only.
	GetByEmailWithHash(email string) (*entities.User, error)
	// GetByIDWithHash is for password changes, which must verify the
	// current password first.
	GetByIDWithHash(id string) (*entities.User, error)
	// Taken reports whether another user already holds the email or
	// username. excludeID skips the caller's own record on updates.
	Taken(email, username, excludeID string) (bool, error)
	// Update writes the profile columns only; the hash is untouched.
	Update(user *entities.User) error
	UpdatePassword(id, passwordHash string) error
}

type ExpenseRepository interface {
	Create(expense *entities.Expense) error
	GetByID(id, userID string) (*entities.Expense, error)
	GetAllByUser(userID string) ([]entities.Expense, error)
	GetByDateRange(userID string, start, end time.Time) ([]entities.Expense, error)
	Delete(id, userID string) error
}

type IncomeRepository interface {
	Create(income *entities.Income) error
	GetByID(id, userID string) (*entities.Income, error)
	GetAllByUser(userID string) ([]entities.Income, error)
	GetByDateRange(userID string, start, end time.Time) ([]entities.Income, error)
	Delete(id, userID string) error
}

type BudgetRepository interface {
	Create(budget *entities.Budget) error
	GetByID(id, userID string) (*entities.Budget, error)
	GetAllByUser(userID string) ([]entities.Budget, error)
	Update(budget *entities.Budget) error
	Delete(id, userID string) error
}

type ReminderRepository interface {
	Create(reminder *entities.Reminder) error
	GetByID(id, userID string) (*entities.Reminder, error)
	GetAllByUser(userID string) ([]entities.Reminder, error)
	Update(reminder *entities.Reminder) error
	Delete(id, userID string) error
	// Open returns uncompleted reminders with a due date after now,
	// for the notification checker.
	Open(now time.Time) ([]entities.Reminder, error)
	// Overdue returns uncompleted reminders already past due.
	Overdue(now time.Time) ([]entities.Reminder, error)
}
