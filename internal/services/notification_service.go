// internal/services/notification_service.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vintagecottage/storefront/internal/models"
)

const (
	maxNotifications     = 50
	notificationTTL      = 24 * time.Hour
	dedupeWindow         = 60 * time.Second
	cleanupInterval      = time.Minute
)

// Notification is an ephemeral, process-local record. The list is bounded
// by count and age; it is not a database entity.
type Notification struct {
	ID        string          `json:"id"`
	Message   string          `json:"message"`
	Severity  models.Severity `json:"severity"`
	Timestamp time.Time       `json:"timestamp"`
	Read      bool            `json:"read"`
	ForAdmin  bool            `json:"for_admin"`
}

// NotificationService owns the in-memory notification list. All mutation
// goes through its methods; callers only ever see copies.
type NotificationService struct {
	mu      sync.Mutex
	entries []*Notification
	stop    chan struct{}
	done    chan struct{}
}

func NewNotificationService() *NotificationService {
	s := &NotificationService{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go s.janitor()

	return s
}

// janitor prunes expired entries once a minute, mirroring the lazy pruning
// Add performs on every write.
func (s *NotificationService) janitor() {
	defer close(s.done)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.pruneLocked(time.Now())
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}

func (s *NotificationService) Close() {
	close(s.stop)
	<-s.done
}

// Add records a notification unless the exact (message, severity) pair was
// already seen within the last minute. Retried operations would otherwise
// storm the list.
func (s *NotificationService) Add(message string, severity models.Severity, forAdmin bool) *Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.pruneLocked(now)

	for _, n := range s.entries {
		if n.Message == message && n.Severity == severity && now.Sub(n.Timestamp) < dedupeWindow {
			return nil
		}
	}

	entry := &Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		Timestamp: now,
		ForAdmin:  forAdmin,
	}

	// Newest first, capped
	s.entries = append([]*Notification{entry}, s.entries...)
	if len(s.entries) > maxNotifications {
		s.entries = s.entries[:maxNotifications]
	}

	copied := *entry
	return &copied
}

func (s *NotificationService) pruneLocked(now time.Time) {
	kept := s.entries[:0]
	for _, n := range s.entries {
		if now.Sub(n.Timestamp) < notificationTTL {
			kept = append(kept, n)
		}
	}
	s.entries = kept
}

// ForUser returns the user-facing partition, newest first.
func (s *NotificationService) ForUser() []Notification {
	return s.filter(func(n *Notification) bool { return !n.ForAdmin })
}

// ForAdmin returns the admin partition, newest first.
func (s *NotificationService) ForAdmin() []Notification {
	return s.filter(func(n *Notification) bool { return n.ForAdmin })
}

func (s *NotificationService) All() []Notification {
	return s.filter(func(*Notification) bool { return true })
}

func (s *NotificationService) filter(keep func(*Notification) bool) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(time.Now())

	out := make([]Notification, 0, len(s.entries))
	for _, n := range s.entries {
		if keep(n) {
			out = append(out, *n)
		}
	}
	return out
}

func (s *NotificationService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.entries {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *NotificationService) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.entries {
		if n.ID == id {
			n.Read = true
			return true
		}
	}
	return false
}

func (s *NotificationService) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.entries {
		if n.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *NotificationService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Snapshot returns the persistable view of the list. Error entries are
// excluded on purpose: they are transient and must not replay after a
// client reload.
func (s *NotificationService) Snapshot() []Notification {
	return s.filter(func(n *Notification) bool { return n.Severity != models.SeverityError })
}

// Restore seeds the list from a persisted snapshot, dropping expired
// entries and enforcing the cap.
func (s *NotificationService) Restore(snapshot []Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.entries = nil
	for i := range snapshot {
		n := snapshot[i]
		if now.Sub(n.Timestamp) >= notificationTTL {
			continue
		}
		s.entries = append(s.entries, &n)
		if len(s.entries) >= maxNotifications {
			break
		}
	}
}
