package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// notifyWindow bounds how far back a missed notification is still sent,
// so a reminder is not re-announced on every scheduler tick.
const notifyWindow = 5 * time.Minute

type Reminder struct {
	ID           string    `gorm:"type:text;primaryKey" json:"_id"`
	UserID       string    `gorm:"index;not null" json:"userId"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `gorm:"index;not null" json:"dueDate"`
	Priority     string    `gorm:"not null;default:medium" json:"priority"`
	NotifyBefore int       `gorm:"not null;default:30" json:"notifyBefore"` // minutes before due date
	Completed    bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now().Format(time.RFC3339)
	r.UpdatedAt = r.CreatedAt
	return
}

// NotificationTime is the moment the user asked to be notified at.
func (r *Reminder) NotificationTime() time.Time {
	return r.DueDate.Add(-time.Duration(r.NotifyBefore) * time.Minute)
}

// ShouldNotify reports whether the notification time fell within the
// last five minutes relative to now.
func (r *Reminder) ShouldNotify(now time.Time) bool {
	if r.Completed {
		return false
	}
	nt := r.NotificationTime()
	return !nt.After(now) && !nt.Before(now.Add(-notifyWindow))
}

// Overdue reports whether the reminder is past due and still open.
func (r *Reminder) Overdue(now time.Time) bool {
	return !r.Completed && r.DueDate.Before(now)
}

func ValidPriority(priority string) bool {
	return priority == PriorityLow || priority == PriorityMedium || priority == PriorityHigh
}
