package usecases

import (
	"errors"
	"time"

	"finance-server/entities"
	"finance-server/repositories"

	"gorm.io/gorm"
)

type ExpenseUseCase struct {
	Repo repositories.ExpenseRepository
}

func NewExpenseUseCase(repo repositories.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{Repo: repo}
}

type ExpenseInput struct {
	Category    string
	Description string
	Amount      float64
	Date        *time.Time
}

// Create stamps the expense with the caller's user id; the client can
// never set ownership.
func (uc *ExpenseUseCase) Create(userID string, in ExpenseInput) (*entities.Expense, error) {
	if in.Category == "" || in.Description == "" {
		return nil, validation("category, description, and amount are required")
	}
	if !entities.ValidExpenseCategory(in.Category) {
		return nil, validation("invalid expense category")
	}
	if in.Amount <= 0 {
		return nil, validation("amount must be a positive number")
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	expense := &entities.Expense{
		UserID:      userID,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
	}
	if err := uc.Repo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (uc *ExpenseUseCase) List(userID string) ([]entities.Expense, error) {
	return uc.Repo.GetAllByUser(userID)
}

func (uc *ExpenseUseCase) Get(id, userID string) (*entities.Expense, error) {
	expense, err := uc.Repo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return expense, nil
}

// ListByDay returns the expenses of a single calendar day.
func (uc *ExpenseUseCase) ListByDay(userID string, day time.Time) ([]entities.Expense, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return uc.Repo.GetByDateRange(userID, start, end)
}

func (uc *ExpenseUseCase) ListByRange(userID string, start, end time.Time) ([]entities.Expense, error) {
	if end.Before(start) {
		return nil, validation("end date must not precede start date")
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).
		AddDate(0, 0, 1).Add(-time.Nanosecond)
	return uc.Repo.GetByDateRange(userID, start, end)
}

func (uc *ExpenseUseCase) Delete(id, userID string) error {
	if err := uc.Repo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
