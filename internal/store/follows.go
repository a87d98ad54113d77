package store

import (
	"context"
	"sync"

	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/models"
)

// FollowStore tracks follow status per user plus a running count of users
// the session follows.
//
// Status toggles exactly on fulfillment of a follow or unfollow, never on
// dispatch. The container performs no identity check; preventing
// self-follow is the caller's concern.
type FollowStore struct {
	mu             sync.Mutex
	client         *api.Client
	status         map[string]bool
	followingCount int
	err            string
}

// NewFollowStore creates the follow container.
func NewFollowStore(client *api.Client) *FollowStore {
	return &FollowStore{client: client, status: make(map[string]bool)}
}

// Follow follows a user; on fulfillment the status flips to true and the
// following count increments if the user was not already followed.
func (s *FollowStore) Follow(ctx context.Context, userID string) error {
	if err := s.client.Follow(ctx, userID); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	if !s.status[userID] {
		s.followingCount++
	}
	s.status[userID] = true
	return nil
}

// Unfollow removes a follow; on fulfillment the status flips to false and
// the following count decrements, floored at zero.
func (s *FollowStore) Unfollow(ctx context.Context, userID string) error {
	if err := s.client.Unfollow(ctx, userID); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	if s.status[userID] && s.followingCount > 0 {
		s.followingCount--
	}
	s.status[userID] = false
	return nil
}

// RefreshStatus fetches whether the session follows a user.
func (s *FollowStore) RefreshStatus(ctx context.Context, userID string) (bool, error) {
	following, err := s.client.FollowingStatus(ctx, userID)
	if err != nil {
		s.setErr(err)
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.status[userID] = following
	return following, nil
}

// Followers lists the users following userID. Pass-through; follower lists
// are not cached in the container.
func (s *FollowStore) Followers(ctx context.Context, userID string) ([]models.User, error) {
	users, err := s.client.Followers(ctx, userID)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	return users, nil
}

// Following lists the users userID follows.
func (s *FollowStore) Following(ctx context.Context, userID string) ([]models.User, error) {
	users, err := s.client.Following(ctx, userID)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	return users, nil
}

// IsFollowing reports the last known follow status for a user.
func (s *FollowStore) IsFollowing(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status[userID]
}

// FollowingCount reports the running count of followed users.
func (s *FollowStore) FollowingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.followingCount
}

// Err returns the last operation error message, if any.
func (s *FollowStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *FollowStore) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errorMessage(err)
}
