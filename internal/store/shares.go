package store

import (
	"context"
	"sync"

	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/models"
)

// ShareStore tracks share counts per entity.
//
// Share is write-only: a successful share does not bump the local count.
// The server owns share totals; RefreshCount must be re-invoked to observe
// the effect. (Deliberately asymmetric with [LikeStore].)
type ShareStore struct {
	mu     sync.Mutex
	client *api.Client
	counts map[models.EntityRef]int
	err    string
}

// NewShareStore creates the share container.
func NewShareStore(client *api.Client) *ShareStore {
	return &ShareStore{client: client, counts: make(map[models.EntityRef]int)}
}

// Share records a share server-side.
func (s *ShareStore) Share(ctx context.Context, ref models.EntityRef) error {
	if err := s.client.Share(ctx, ref); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	return nil
}

// RefreshCount fetches the server-side share count for an entity.
func (s *ShareStore) RefreshCount(ctx context.Context, ref models.EntityRef) (int, error) {
	count, err := s.client.SharesCount(ctx, ref)
	if err != nil {
		s.setErr(err)
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.counts[ref] = count
	return count, nil
}

// Count reports the last fetched share count for an entity.
func (s *ShareStore) Count(ref models.EntityRef) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[ref]
}

// Err returns the last operation error message, if any.
func (s *ShareStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *ShareStore) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errorMessage(err)
}
