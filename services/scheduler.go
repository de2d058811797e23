package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"finance-server/cache"
	"finance-server/entities"
	"finance-server/repositories"
	"finance-server/ws"
)

// ReminderScheduler periodically scans reminders and emits notifications:
// a minute tick for ones entering their notify window and an hourly tick
// for overdue ones. Start and Stop are idempotent.
type ReminderScheduler struct {
	reminders repositories.ReminderRepository
	store     *cache.NotificationStore
	hub       *ws.Manager

	checkInterval   time.Duration
	overdueInterval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	wg      sync.WaitGroup
	running bool
}

func NewReminderScheduler(reminders repositories.ReminderRepository, store *cache.NotificationStore, hub *ws.Manager) *ReminderScheduler {
	return &ReminderScheduler{
		reminders:       reminders,
		store:           store,
		hub:             hub,
		checkInterval:   time.Minute,
		overdueInterval: time.Hour,
	}
}

// Start launches the background checkers. Calling it again while
// running is a no-op.
func (s *ReminderScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})

	// Check once right away so a restart doesn't miss the current window
	s.CheckUpcoming()

	s.wg.Add(1)
	go s.run(s.stop)

	log.Println("Reminder notification checker started")
}

// Stop shuts the checkers down and waits for them. Safe to call twice.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	s.wg.Wait()
	log.Println("Reminder notification checker stopped")
}

func (s *ReminderScheduler) run(stop chan struct{}) {
	defer s.wg.Done()

	check := time.NewTicker(s.checkInterval)
	overdue := time.NewTicker(s.overdueInterval)
	defer check.Stop()
	defer overdue.Stop()

	for {
		select {
		case <-check.C:
			if n := s.CheckUpcoming(); n > 0 {
				log.Printf("Sent %d reminder notifications", n)
			}
		case <-overdue.C:
			if n := s.CheckOverdue(); n > 0 {
				log.Printf("Sent %d overdue reminder notifications", n)
			}
		case <-stop:
			return
		}
	}
}

// CheckUpcoming emits a notification for every open reminder whose
// notification time fell within the last five minutes. Returns how many
// were newly emitted.
func (s *ReminderScheduler) CheckUpcoming() int {
	now := time.Now()
	reminders, err := s.reminders.Open(now)
	if err != nil {
		log.Printf("Error checking reminders: %v", err)
		return 0
	}

	count := 0
	for _, r := range reminders {
		if !r.ShouldNotify(now) {
			continue
		}
		message := fmt.Sprintf("Reminder %q is due at %s", r.Title, r.DueDate.Format(time.RFC1123))
		if s.emit(r, entities.NotificationUpcoming, message) {
			count++
		}
	}
	return count
}

// CheckOverdue emits a notification for every reminder past its due
// date and not completed.
func (s *ReminderScheduler) CheckOverdue() int {
	now := time.Now()
	reminders, err := s.reminders.Overdue(now)
	if err != nil {
		log.Printf("Error checking overdue reminders: %v", err)
		return 0
	}

	count := 0
	for _, r := range reminders {
		message := fmt.Sprintf("Reminder %q was due at %s and is still open", r.Title, r.DueDate.Format(time.RFC1123))
		if s.emit(r, entities.NotificationOverdue, message) {
			count++
		}
	}
	return count
}

func (s *ReminderScheduler) emit(r entities.Reminder, kind, message string) bool {
	n, fresh := s.store.Add(r.UserID, r.ID, kind, r.Title, message)
	if !fresh {
		return false
	}
	// Push is best effort; the store keeps the notification for polling
	if err := s.hub.Send(r.UserID, n); err == nil {
		log.Printf("Pushed %s notification for reminder %s", kind, r.ID)
	}
	return true
}
