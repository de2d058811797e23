package cache

import (
	"sync"
	"time"

	"finance-server/entities"

	"github.com/google/uuid"
)

// NotificationStore keeps pending notifications in memory, per user.
// Nothing here is persisted; a restart simply drops unread entries,
// matching the fire-and-forget nature of reminder pings.
type NotificationStore struct {
	mu      sync.RWMutex
	pending map[string][]entities.Notification // userID -> notifications
	seen    map[string]time.Time               // dedup key -> first emit time
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{
		pending: make(map[string][]entities.Notification),
		seen:    make(map[string]time.Time),
	}
}

// Add records a notification unless its dedup key was already emitted.
// Returns the stored notification and whether it was new.
func (s *NotificationStore) Add(userID, reminderID, kind, title, message string) (entities.Notification, bool) {
	key := reminderID + ":" + kind

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.seen[key]; dup {
		return entities.Notification{}, false
	}
	s.seen[key] = time.Now()

	n := entities.Notification{
		ID:         uuid.New().String(),
		UserID:     userID,
		ReminderID: reminderID,
		Kind:       kind,
		Title:      title,
		Message:    message,
		CreatedAt:  time.Now(),
	}
	s.pending[userID] = append(s.pending[userID], n)
	return n, true
}

// Pending returns a copy of the user's unread notifications.
func (s *NotificationStore) Pending(userID string) []entities.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Notification, len(s.pending[userID]))
	copy(out, s.pending[userID])
	return out
}

// Dismiss removes one notification for the user. Returns false when no
// such notification exists for that user.
func (s *NotificationStore) Dismiss(userID, notificationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.pending[userID]
	for i, n := range list {
		if n.ID == notificationID {
			s.pending[userID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Forget drops the dedup marker for a reminder so a future edit can
// trigger a fresh notification.
func (s *NotificationStore) Forget(reminderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.seen, reminderID+":"+entities.NotificationUpcoming)
	delete(s.seen, reminderID+":"+entities.NotificationOverdue)
}

// Stats returns counters about the store's current contents.
func (s *NotificationStore) Stats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, list := range s.pending {
		total += len(list)
	}
	return map[string]interface{}{
		"users_with_pending": len(s.pending),
		"total_pending":      total,
		"deduped_reminders":  len(s.seen),
	}
}
