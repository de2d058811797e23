package usecases

import (
	"errors"
	"time"

	"finance-server/entities"
	"finance-server/repositories"

	"gorm.io/gorm"
)

type IncomeUseCase struct {
	Repo repositories.IncomeRepository
}

func NewIncomeUseCase(repo repositories.IncomeRepository) *IncomeUseCase {
	return &IncomeUseCase{Repo: repo}
}

type IncomeInput struct {
	Category    string
	Description string
	Amount      float64
	Date        *time.Time
}

func (uc *IncomeUseCase) Create(userID string, in IncomeInput) (*entities.Income, error) {
	if in.Category == "" || in.Description == "" {
		return nil, validation("category, description, and amount are required")
	}
	if !entities.ValidIncomeCategory(in.Category) {
		return nil, validation("invalid income category")
	}
	if in.Amount <= 0 {
		return nil, validation("amount must be a positive number")
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	income := &entities.Income{
		UserID:      userID,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
	}
	if err := uc.Repo.Create(income); err != nil {
		return nil, err
	}
	return income, nil
}

func (uc *IncomeUseCase) List(userID string) ([]entities.Income, error) {
	return uc.Repo.GetAllByUser(userID)
}

func (uc *IncomeUseCase) Get(id, userID string) (*entities.Income, error) {
	income, err := uc.Repo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return income, nil
}

func (uc *IncomeUseCase) ListByDay(userID string, day time.Time) ([]entities.Income, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return uc.Repo.GetByDateRange(userID, start, end)
}

func (uc *IncomeUseCase) ListByRange(userID string, start, end time.Time) ([]entities.Income, error) {
	if end.Before(start) {
		return nil, validation("end date must not precede start date")
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).
		AddDate(0, 0, 1).Add(-time.Nanosecond)
	return uc.Repo.GetByDateRange(userID, start, end)
}

func (uc *IncomeUseCase) Delete(id, userID string) error {
	if err := uc.Repo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
