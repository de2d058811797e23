package usecases

import (
	"errors"
	"time"

	"finance-server/entities"
	"finance-server/repositories"

	"gorm.io/gorm"
)

type ReminderUseCase struct {
	Repo repositories.ReminderRepository
}

func NewReminderUseCase(repo repositories.ReminderRepository) *ReminderUseCase {
	return &ReminderUseCase{Repo: repo}
}

type ReminderInput struct {
	Title        string
	Description  string
	DueDate      time.Time
	Priority     string
	NotifyBefore *int
	Completed    bool
}

func (uc *ReminderUseCase) Create(userID string, in ReminderInput) (*entities.Reminder, error) {
	if in.Title == "" || in.DueDate.IsZero() {
		return nil, validation("title and due date are required")
	}
	priority := in.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}
	if !entities.ValidPriority(priority) {
		return nil, validation("priority must be low, medium or high")
	}
	notifyBefore := 30
	if in.NotifyBefore != nil {
		if *in.NotifyBefore < 0 {
			return nil, validation("notification time cannot be negative")
		}
		notifyBefore = *in.NotifyBefore
	}

	reminder := &entities.Reminder{
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		DueDate:      in.DueDate,
		Priority:     priority,
		NotifyBefore: notifyBefore,
		Completed:    in.Completed,
	}
	if err := uc.Repo.Create(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (uc *ReminderUseCase) List(userID string) ([]entities.Reminder, error) {
	return uc.Repo.GetAllByUser(userID)
}

func (uc *ReminderUseCase) Get(id, userID string) (*entities.Reminder, error) {
	reminder, err := uc.Repo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return reminder, nil
}

// ReminderPatch updates only the provided fields.
type ReminderPatch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	Priority     *string
	NotifyBefore *int
	Completed    *bool
}

func (uc *ReminderUseCase) Update(id, userID string, patch ReminderPatch) (*entities.Reminder, error) {
	reminder, err := uc.Get(id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, validation("title and due date are required")
		}
		reminder.Title = *patch.Title
	}
	if patch.Description != nil {
		reminder.Description = *patch.Description
	}
	if patch.DueDate != nil {
		if patch.DueDate.IsZero() {
			return nil, validation("title and due date are required")
		}
		reminder.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		if !entities.ValidPriority(*patch.Priority) {
			return nil, validation("priority must be low, medium or high")
		}
		reminder.Priority = *patch.Priority
	}
	if patch.NotifyBefore != nil {
		if *patch.NotifyBefore < 0 {
			return nil, validation("notification time cannot be negative")
		}
		reminder.NotifyBefore = *patch.NotifyBefore
	}
	if patch.Completed != nil {
		reminder.Completed = *patch.Completed
	}

	if err := uc.Repo.Update(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// SetCompleted flips the completion flag, keeping everything else.
func (uc *ReminderUseCase) SetCompleted(id, userID string, completed bool) (*entities.Reminder, error) {
	reminder, err := uc.Get(id, userID)
	if err != nil {
		return nil, err
	}
	reminder.Completed = completed
	if err := uc.Repo.Update(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (uc *ReminderUseCase) Delete(id, userID string) error {
	if err := uc.Repo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
