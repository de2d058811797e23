package usecases

import (
	"strings"
	"time"

	"finance-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the postgres implementations'
// contract: gorm.ErrRecordNotFound for misses, ids assigned on create,
// ownership enforced by matching both id and user id.

type fakeUserRepo struct {
	users []*entities.User
}

func (f *fakeUserRepo) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now().Format(time.RFC3339)
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			out := *u
			out.PasswordHash = ""
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmailWithHash(email string) (*entities.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByIDWithHash(id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Taken(email, username, excludeID string) (bool, error) {
	for _, u := range f.users {
		if u.ID == excludeID {
			continue
		}
		if strings.EqualFold(u.Email, email) || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(user *entities.User) error {
	for _, u := range f.users {
		if u.ID == user.ID {
			u.FirstName = user.FirstName
			u.LastName = user.LastName
			u.Username = user.Username
			u.Email = user.Email
			u.UpdatedAt = time.Now().Format(time.RFC3339)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeExpenseRepo struct {
	expenses []entities.Expense
}

func (f *fakeExpenseRepo) Create(expense *entities.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	f.expenses = append(f.expenses, *expense)
	return nil
}

func (f *fakeExpenseRepo) GetByID(id, userID string) (*entities.Expense, error) {
	for _, e := range f.expenses {
		if e.ID == id && e.UserID == userID {
			out := e
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeExpenseRepo) GetAllByUser(userID string) ([]entities.Expense, error) {
	var out []entities.Expense
	for _, e := range f.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) GetByDateRange(userID string, start, end time.Time) ([]entities.Expense, error) {
	var out []entities.Expense
	for _, e := range f.expenses {
		if e.UserID == userID && !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) Delete(id, userID string) error {
	for i, e := range f.expenses {
		if e.ID == id && e.UserID == userID {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeIncomeRepo struct {
	incomes []entities.Income
}

func (f *fakeIncomeRepo) Create(income *entities.Income) error {
	if income.ID == "" {
		income.ID = uuid.New().String()
	}
	f.incomes = append(f.incomes, *income)
	return nil
}

func (f *fakeIncomeRepo) GetByID(id, userID string) (*entities.Income, error) {
	for _, in := range f.incomes {
		if in.ID == id && in.UserID == userID {
			out := in
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIncomeRepo) GetAllByUser(userID string) ([]entities.Income, error) {
	var out []entities.Income
	for _, in := range f.incomes {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (f *fakeIncomeRepo) GetByDateRange(userID string, start, end time.Time) ([]entities.Income, error) {
	var out []entities.Income
	for _, in := range f.incomes {
		if in.UserID == userID && !in.Date.Before(start) && !in.Date.After(end) {
			out = append(out, in)
		}
	}
	return out, nil
}

func (f *fakeIncomeRepo) Delete(id, userID string) error {
	for i, in := range f.incomes {
		if in.ID == id && in.UserID == userID {
			f.incomes = append(f.incomes[:i], f.incomes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeBudgetRepo struct {
	budgets []*entities.Budget
}

func assignBudgetIDs(budget *entities.Budget) {
	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	for i := range budget.Items {
		if budget.Items[i].ID == "" {
			budget.Items[i].ID = uuid.New().String()
		}
		budget.Items[i].BudgetID = budget.ID
		for j := range budget.Items[i].Contributors {
			if budget.Items[i].Contributors[j].ID == "" {
				budget.Items[i].Contributors[j].ID = uuid.New().String()
			}
			budget.Items[i].Contributors[j].BudgetItemID = budget.Items[i].ID
		}
	}
}

func (f *fakeBudgetRepo) Create(budget *entities.Budget) error {
	assignBudgetIDs(budget)
	stored := *budget
	f.budgets = append(f.budgets, &stored)
	return nil
}

func (f *fakeBudgetRepo) GetByID(id, userID string) (*entities.Budget, error) {
	for _, b := range f.budgets {
		if b.ID == id && b.UserID == userID {
			out := *b
			out.Items = append([]entities.BudgetItem(nil), b.Items...)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBudgetRepo) GetAllByUser(userID string) ([]entities.Budget, error) {
	var out []entities.Budget
	for _, b := range f.budgets {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) Update(budget *entities.Budget) error {
	for i, b := range f.budgets {
		if b.ID == budget.ID && b.UserID == budget.UserID {
			assignBudgetIDs(budget)
			stored := *budget
			f.budgets[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeBudgetRepo) Delete(id, userID string) error {
	for i, b := range f.budgets {
		if b.ID == id && b.UserID == userID {
			f.budgets = append(f.budgets[:i], f.budgets[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeReminderRepo struct {
	reminders []*entities.Reminder
}

func (f *fakeReminderRepo) Create(reminder *entities.Reminder) error {
	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	stored := *reminder
	f.reminders = append(f.reminders, &stored)
	return nil
}

func (f *fakeReminderRepo) GetByID(id, userID string) (*entities.Reminder, error) {
	for _, r := range f.reminders {
		if r.ID == id && r.UserID == userID {
			out := *r
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReminderRepo) GetAllByUser(userID string) ([]entities.Reminder, error) {
	var out []entities.Reminder
	for _, r := range f.reminders {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) Update(reminder *entities.Reminder) error {
	for i, r := range f.reminders {
		if r.ID == reminder.ID && r.UserID == reminder.UserID {
			stored := *reminder
			f.reminders[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeReminderRepo) Delete(id, userID string) error {
	for i, r := range f.reminders {
		if r.ID == id && r.UserID == userID {
			f.reminders = append(f.reminders[:i], f.reminders[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeReminderRepo) Open(now time.Time) ([]entities.Reminder, error) {
	var out []entities.Reminder
	for _, r := range f.reminders {
		if !r.Completed && r.DueDate.After(now) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) Overdue(now time.Time) ([]entities.Reminder, error) {
	var out []entities.Reminder
	for _, r := range f.reminders {
		if !r.Completed && r.DueDate.Before(now) {
			out = append(out, *r)
		}
	}
	return out, nil
}
