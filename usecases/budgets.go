package usecases

import (
	"errors"
	"time"

	"finance-server/entities"
	"finance-server/repositories"

	"gorm.io/gorm"
)

type BudgetUseCase struct {
	Repo repositories.BudgetRepository
}

func NewBudgetUseCase(repo repositories.BudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{Repo: repo}
}

type ContributorInput struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Contribution float64 `json:"contribution"`
}

type BudgetItemInput struct {
	Name            string             `json:"name"`
	Category        string             `json:"category"`
	EstimatedAmount float64            `json:"estimatedAmount"`
	ActualAmount    float64            `json:"actualAmount"`
	Contributors    []ContributorInput `json:"contributors"`
}

type BudgetInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	StartDate   time.Time         `json:"startDate"`
	EndDate     time.Time         `json:"endDate"`
	Status      string            `json:"status"`
	Items       []BudgetItemInput `json:"items"`
}

func buildItems(inputs []BudgetItemInput) ([]entities.BudgetItem, error) {
	items := make([]entities.BudgetItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Name == "" {
			return nil, validation("budget item name is required")
		}
		if !entities.ValidBudgetItemCategory(in.Category) {
			return nil, validation("invalid budget item category")
		}
		if in.EstimatedAmount < 0 || in.ActualAmount < 0 {
			return nil, validation("budget item amounts cannot be negative")
		}
		item := entities.BudgetItem{
			Name:            in.Name,
			Category:        in.Category,
			EstimatedAmount: in.EstimatedAmount,
			ActualAmount:    in.ActualAmount,
		}
		for _, c := range in.Contributors {
			if c.Name == "" {
				return nil, validation("contributor name is required")
			}
			if c.Contribution < 0 {
				return nil, validation("contribution cannot be negative")
			}
			item.Contributors = append(item.Contributors, entities.Contributor{
				Name:         c.Name,
				Email:        c.Email,
				Contribution: c.Contribution,
			})
		}
		items = append(items, item)
	}
	return items, nil
}

// Create builds a budget for the caller. The total is computed from the
// item estimates; a client-sent total is never trusted.
func (uc *BudgetUseCase) Create(userID string, in BudgetInput) (*entities.Budget, error) {
	if in.Title == "" || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, validation("title, start date and end date are required")
	}
	status := in.Status
	if status == "" {
		status = entities.BudgetStatusPlanning
	}
	if !entities.ValidBudgetStatus(status) {
		return nil, validation("valid status is required: planning, ongoing, or completed")
	}

	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	budget := &entities.Budget{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		Items:       items,
	}
	budget.TotalBudget = budget.ComputeTotal()

	if err := uc.Repo.Create(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (uc *BudgetUseCase) List(userID string) ([]entities.Budget, error) {
	return uc.Repo.GetAllByUser(userID)
}

func (uc *BudgetUseCase) Get(id, userID string) (*entities.Budget, error) {
	budget, err := uc.Repo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return budget, nil
}

// Update replaces the budget's fields and items, recomputing the total.
func (uc *BudgetUseCase) Update(id, userID string, in BudgetInput) (*entities.Budget, error) {
	if in.Title == "" || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, validation("title, start date and end date are required")
	}
	status := in.Status
	if status == "" {
		status = entities.BudgetStatusPlanning
	}
	if !entities.ValidBudgetStatus(status) {
		return nil, validation("valid status is required: planning, ongoing, or completed")
	}

	budget, err := uc.Get(id, userID)
	if err != nil {
		return nil, err
	}

	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	budget.Title = in.Title
	budget.Description = in.Description
	budget.StartDate = in.StartDate
	budget.EndDate = in.EndDate
	budget.Status = status
	budget.Items = items
	budget.TotalBudget = budget.ComputeTotal()

	if err := uc.Repo.Update(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (uc *BudgetUseCase) UpdateStatus(id, userID, status string) (*entities.Budget, error) {
	if !entities.ValidBudgetStatus(status) {
		return nil, validation("valid status is required: planning, ongoing, or completed")
	}

	budget, err := uc.Get(id, userID)
	if err != nil {
		return nil, err
	}
	budget.Status = status
	if err := uc.Repo.Update(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// BudgetItemPatch updates a single item field-by-field; nil leaves the
// field alone. Item identity and ownership are not patchable.
type BudgetItemPatch struct {
	Name            *string             `json:"name"`
	Category        *string             `json:"category"`
	EstimatedAmount *float64            `json:"estimatedAmount"`
	ActualAmount    *float64            `json:"actualAmount"`
	Contributors    *[]ContributorInput `json:"contributors"`
}

func (uc *BudgetUseCase) UpdateItem(budgetID, itemID, userID string, patch BudgetItemPatch) (*entities.Budget, error) {
	budget, err := uc.Get(budgetID, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range budget.Items {
		if budget.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	item := &budget.Items[idx]
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, validation("budget item name is required")
		}
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		if !entities.ValidBudgetItemCategory(*patch.Category) {
			return nil, validation("invalid budget item category")
		}
		item.Category = *patch.Category
	}
	if patch.EstimatedAmount != nil {
		if *patch.EstimatedAmount < 0 {
			return nil, validation("budget item amounts cannot be negative")
		}
		item.EstimatedAmount = *patch.EstimatedAmount
	}
	if patch.ActualAmount != nil {
		if *patch.ActualAmount < 0 {
			return nil, validation("budget item amounts cannot be negative")
		}
		item.ActualAmount = *patch.ActualAmount
	}
	if patch.Contributors != nil {
		contributors := make([]entities.Contributor, 0, len(*patch.Contributors))
		for _, c := range *patch.Contributors {
			if c.Name == "" {
				return nil, validation("contributor name is required")
			}
			if c.Contribution < 0 {
				return nil, validation("contribution cannot be negative")
			}
			contributors = append(contributors, entities.Contributor{
				Name:         c.Name,
				Email:        c.Email,
				Contribution: c.Contribution,
			})
		}
		item.Contributors = contributors
	}

	budget.TotalBudget = budget.ComputeTotal()

	if err := uc.Repo.Update(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (uc *BudgetUseCase) Delete(id, userID string) error {
	if err := uc.Repo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
