package store

import (
	"context"
	"sync"

	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/models"
)

// CommentStore holds comment lists keyed by the entity they target.
//
// Ordering: Create prepends (newest first); Fetch replaces the whole list
// preserving server-provided order.
type CommentStore struct {
	mu     sync.Mutex
	client *api.Client
	lists  map[models.EntityRef][]models.Comment
	err    string
}

// NewCommentStore creates the comment container.
func NewCommentStore(client *api.Client) *CommentStore {
	return &CommentStore{client: client, lists: make(map[models.EntityRef][]models.Comment)}
}

// Create posts a comment; on fulfillment the new comment becomes the first
// element of the entity's list.
func (s *CommentStore) Create(ctx context.Context, ref models.EntityRef, content string) (*models.Comment, error) {
	comment, err := s.client.CreateComment(ctx, ref, content)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.lists[ref] = append([]models.Comment{*comment}, s.lists[ref]...)
	return comment, nil
}

// Fetch replaces the entity's comment list with the server's, in server
// order.
func (s *CommentStore) Fetch(ctx context.Context, ref models.EntityRef) ([]models.Comment, error) {
	comments, err := s.client.Comments(ctx, ref)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.lists[ref] = comments
	return comments, nil
}

// Update edits a comment's content in place, keeping its list position.
func (s *CommentStore) Update(ctx context.Context, ref models.EntityRef, commentID, content string) (*models.Comment, error) {
	updated, err := s.client.UpdateComment(ctx, commentID, content)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	list := s.lists[ref]
	for i := range list {
		if list[i].ID == commentID {
			list[i] = *updated
			break
		}
	}
	return updated, nil
}

// Delete removes a comment from the entity's list on fulfillment.
func (s *CommentStore) Delete(ctx context.Context, ref models.EntityRef, commentID string) error {
	if err := s.client.DeleteComment(ctx, commentID); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	list := s.lists[ref]
	for i := range list {
		if list[i].ID == commentID {
			s.lists[ref] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return nil
}

// List returns a copy of the last known comment list for an entity.
func (s *CommentStore) List(ref models.EntityRef) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.lists[ref]
	out := make([]models.Comment, len(list))
	copy(out, list)
	return out
}

// Err returns the last operation error message, if any.
func (s *CommentStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *CommentStore) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errorMessage(err)
}
