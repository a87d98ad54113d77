package store

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/models"
)

// NotificationCache persists notifications for offline listing. Cache
// failures are logged, never surfaced; the in-memory container remains the
// source of truth for the session.
type NotificationCache interface {
	Upsert(notifications ...models.Notification) error
	Remove(id string) error
}

// NotificationState is a snapshot of the notification container.
type NotificationState struct {
	Items       []models.Notification
	Page        models.Page
	UnreadCount int
	Loading     bool
	Err         string
}

// NotificationStore holds the notification list, fed by both paged fetches
// and the real-time channel.
//
// UnreadCount is recomputed from the fetched page only, not from a global
// server total; the server remains the source of truth for true counts.
type NotificationStore struct {
	mu     sync.Mutex
	seq    sequencer
	client *api.Client
	cache  NotificationCache
	logger *log.Logger
	state  NotificationState
}

// NewNotificationStore creates the notification container. cache may be
// nil.
func NewNotificationStore(client *api.Client, cache NotificationCache, logger *log.Logger) *NotificationStore {
	return &NotificationStore{client: client, cache: cache, logger: logger}
}

// Fetch replaces the list with one server page and recomputes UnreadCount
// from that page. Latest-issued-wins, as with every paged fetch.
func (s *NotificationStore) Fetch(ctx context.Context, limit, offset int, includeRead bool) error {
	s.mu.Lock()
	seq := s.seq.next()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	page, err := s.client.Notifications(ctx, limit, offset, includeRead)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seq.current(seq) {
		return nil
	}

	s.state.Loading = false
	if err != nil {
		s.state.Err = errorMessage(err)
		return err
	}

	s.state.Items = page.Notifications
	s.state.Page = page.Page
	s.state.UnreadCount = 0
	for _, n := range page.Notifications {
		if !n.IsRead {
			s.state.UnreadCount++
		}
	}

	s.cacheUpsert(page.Notifications...)
	return nil
}

// MarkRead marks one notification read; on fulfillment the unread count
// decrements if the item was unread, floored at zero.
func (s *NotificationStore) MarkRead(ctx context.Context, id string) error {
	if err := s.client.MarkRead(ctx, id); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			if !s.state.Items[i].IsRead && s.state.UnreadCount > 0 {
				s.state.UnreadCount--
			}
			s.state.Items[i].IsRead = true
			s.cacheUpsert(s.state.Items[i])
			break
		}
	}
	return nil
}

// MarkAllRead marks every notification read and zeroes the unread count.
func (s *NotificationStore) MarkAllRead(ctx context.Context) error {
	if err := s.client.MarkAllRead(ctx); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
	for i := range s.state.Items {
		s.state.Items[i].IsRead = true
	}
	s.state.UnreadCount = 0
	s.cacheUpsert(s.state.Items...)
	return nil
}

// Delete removes a notification; if it was unread the unread count
// decrements by exactly one, floored at zero.
func (s *NotificationStore) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteNotification(ctx, id); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			if !s.state.Items[i].IsRead && s.state.UnreadCount > 0 {
				s.state.UnreadCount--
			}
			s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
			break
		}
	}

	if s.cache != nil {
		if err := s.cache.Remove(id); err != nil && s.logger != nil {
			s.logger.Warn("failed to remove cached notification", "id", id, "error", err)
		}
	}
	return nil
}

// Add inserts a notification pushed by the real-time channel: it is
// prepended and the unread count increments unconditionally.
func (s *NotificationStore) Add(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = append([]models.Notification{n}, s.state.Items...)
	s.state.UnreadCount++
	s.cacheUpsert(n)
}

// State returns a snapshot of the container.
func (s *NotificationStore) State() NotificationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Items = make([]models.Notification, len(s.state.Items))
	copy(snapshot.Items, s.state.Items)
	return snapshot
}

// ClearError clears only the error field.
func (s *NotificationStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
}

func (s *NotificationStore) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = errorMessage(err)
}

// cacheUpsert persists notifications to the offline cache; callers hold the
// mutex.
func (s *NotificationStore) cacheUpsert(notifications ...models.Notification) {
	if s.cache == nil || len(notifications) == 0 {
		return
	}
	if err := s.cache.Upsert(notifications...); err != nil && s.logger != nil {
		s.logger.Warn("failed to cache notifications", "error", err)
	}
}
