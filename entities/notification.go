package entities

import "time"

const (
	NotificationUpcoming = "upcoming"
	NotificationOverdue  = "overdue"
)

// Notification is an in-memory event produced by the reminder scheduler.
// It is not persisted; the store in cache/ holds pending ones per user.
type Notification struct {
	ID         string    `json:"_id"`
	UserID     string    `json:"userId"`
	ReminderID string    `json:"reminderId"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
