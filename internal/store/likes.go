package store

import (
	"context"
	"sync"

	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/models"
)

// LikeStore tracks like status and counts per entity.
//
// State flips only on fulfillment: a dispatched like that fails leaves both
// the status and the count untouched. Counts are floored at zero, including
// an unlike without a prior like.
type LikeStore struct {
	mu     sync.Mutex
	client *api.Client
	liked  map[models.EntityRef]bool
	counts map[models.EntityRef]int
	err    string
}

// NewLikeStore creates the like container.
func NewLikeStore(client *api.Client) *LikeStore {
	return &LikeStore{
		client: client,
		liked:  make(map[models.EntityRef]bool),
		counts: make(map[models.EntityRef]int),
	}
}

// Like records a like and, on fulfillment, marks the entity liked and
// increments its count.
func (s *LikeStore) Like(ctx context.Context, ref models.EntityRef) error {
	if err := s.client.Like(ctx, ref); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.liked[ref] = true
	s.counts[ref]++
	return nil
}

// Unlike removes a like and, on fulfillment, clears the liked flag and
// decrements the count, floored at zero.
func (s *LikeStore) Unlike(ctx context.Context, ref models.EntityRef) error {
	if err := s.client.Unlike(ctx, ref); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.liked[ref] = false
	if s.counts[ref] > 0 {
		s.counts[ref]--
	}
	return nil
}

// RefreshCount fetches the server-side like count for an entity. Must be
// called once per entity before Count is meaningful; there is no cache
// expiry or invalidation.
func (s *LikeStore) RefreshCount(ctx context.Context, ref models.EntityRef) (int, error) {
	count, err := s.client.LikesCount(ctx, ref)
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

// CheckStatus fetches whether the authenticated user has liked an entity.
func (s *LikeStore) CheckStatus(ctx context.Context, ref models.EntityRef) (bool, error) {
	liked, err := s.client.CheckLike(ctx, ref)
	if err != nil {
		s.setErr(err)
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.liked[ref] = liked
	return liked, nil
}

// Liked reports the last known like status for an entity.
func (s *LikeStore) Liked(ref models.EntityRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked[ref]
}

// Count reports the last known like count for an entity.
func (s *LikeStore) Count(ref models.EntityRef) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[ref]
}

// Err returns the last operation error message, if any.
func (s *LikeStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *LikeStore) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errorMessage(err)
}
