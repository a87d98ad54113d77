package store

import (
	"context"
	"sync"

	"github.com/nycmg/nycmg-cli/internal/models"
)

// CollectionState is a snapshot of a paged collection container.
type CollectionState[T any] struct {
	Items   []T
	Page    models.Page
	Loading bool
	Err     string
}

// FetchPageFunc loads one page of a collection from the API.
type FetchPageFunc[F, T any] func(ctx context.Context, filter F) ([]T, models.Page, error)

// CollectionStore holds a paged collection for one catalog resource.
//
// A successful fetch replaces Items wholesale; there are no merge or append
// semantics. A failed fetch records the error and leaves the previous items
// visible.
type CollectionStore[F, T any] struct {
	mu    sync.Mutex
	seq   sequencer
	fetch FetchPageFunc[F, T]
	state CollectionState[T]
}

// NewCollectionStore creates a collection container backed by the given
// fetch function.
func NewCollectionStore[F, T any](fetch FetchPageFunc[F, T]) *CollectionStore[F, T] {
	return &CollectionStore[F, T]{fetch: fetch}
}

// Fetch loads a page and replaces the collection on success.
//
// Overlapping fetches resolve to the latest issued call: a completion that
// has been overtaken by a newer dispatch is discarded entirely, so its
// result (and its error) never becomes visible.
func (s *CollectionStore[F, T]) Fetch(ctx context.Context, filter F) error {
	s.mu.Lock()
	seq := s.seq.next()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	items, page, err := s.fetch(ctx, filter)

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

	s.state.Items = items
	s.state.Page = page
	return nil
}

// State returns a snapshot of the container.
func (s *CollectionStore[F, T]) State() CollectionState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ClearError clears only the error field without touching data.
func (s *CollectionStore[F, T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
}

// DetailState is a snapshot of a selected-singleton container.
type DetailState[T any] struct {
	Selected *T
	Loading  bool
	Err      string
}

// FetchOneFunc loads a single entity by ID from the API.
type FetchOneFunc[T any] func(ctx context.Context, id string) (*T, error)

// DetailStore holds the nullable "selected" singleton for one resource.
//
// It exists independently of any collection for the same resource; the two
// hold separate copies and are never reconciled.
type DetailStore[T any] struct {
	mu    sync.Mutex
	seq   sequencer
	fetch FetchOneFunc[T]
	state DetailState[T]
}

// NewDetailStore creates a singleton container backed by the given fetch
// function.
func NewDetailStore[T any](fetch FetchOneFunc[T]) *DetailStore[T] {
	return &DetailStore[T]{fetch: fetch}
}

// Fetch loads the entity with the given ID into the singleton slot, with
// the same latest-issued-wins discipline as [CollectionStore.Fetch].
func (s *DetailStore[T]) Fetch(ctx context.Context, id string) error {
	s.mu.Lock()
	seq := s.seq.next()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	selected, err := s.fetch(ctx, id)

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

	s.state.Selected = selected
	return nil
}

// Clear synchronously empties the singleton slot. Used when navigating away
// from a detail view so stale detail is never shown on return.
func (s *DetailStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Selected = nil
}

// ClearError clears only the error field.
func (s *DetailStore[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
}

// State returns a snapshot of the container.
func (s *DetailStore[T]) State() DetailState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
