package store

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/models"
)

// TokenStore persists the bearer token between runs.
//
// This is the single well-known storage slot the rest of the client reads
// at call time; [repositories.TokenRepository] is the sqlite-backed
// implementation.
type TokenStore interface {
	Save(token, userID string) error
	Load() (token, userID string, err error)
	Clear() error
}

// SessionState is a snapshot of the authentication container.
type SessionState struct {
	User          *models.User
	Token         string
	Authenticated bool
	Loading       bool
	Err           string
}

// SessionStore owns the authenticated session.
//
// Invariant: Authenticated is true iff Token is non-empty and has not been
// proven invalid. A rejected profile fetch is the only way an expired token
// can be detected, so it forces a logout.
type SessionStore struct {
	mu     sync.Mutex
	seq    sequencer
	client *api.Client
	tokens TokenStore
	logger *log.Logger
	state  SessionState
}

// NewSessionStore creates the session container. tokens may be nil, in
// which case the session is memory-only.
func NewSessionStore(client *api.Client, tokens TokenStore, logger *log.Logger) *SessionStore {
	return &SessionStore{client: client, tokens: tokens, logger: logger}
}

// Token returns the current bearer token, for use as the client's
// [api.TokenSource].
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// State returns a snapshot of the session.
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Restore loads a previously persisted token, if any.
func (s *SessionStore) Restore() {
	if s.tokens == nil {
		return
	}

	token, _, err := s.tokens.Load()
	if err != nil || token == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	s.state.Authenticated = true
}

// Login authenticates with email and password. On success the token is
// persisted and the session becomes authenticated.
func (s *SessionStore) Login(ctx context.Context, creds api.Credentials) error {
	return s.authenticate(func() (*api.AuthResponse, error) {
		return s.client.Login(ctx, creds)
	})
}

// Register creates an account and authenticates the session with the
// returned token.
func (s *SessionStore) Register(ctx context.Context, reg api.Registration) error {
	return s.authenticate(func() (*api.AuthResponse, error) {
		return s.client.Register(ctx, reg)
	})
}

// Refresh exchanges the current token for a fresh one.
func (s *SessionStore) Refresh(ctx context.Context) error {
	return s.authenticate(func() (*api.AuthResponse, error) {
		return s.client.Refresh(ctx)
	})
}

func (s *SessionStore) authenticate(call func() (*api.AuthResponse, error)) error {
	s.mu.Lock()
	seq := s.seq.next()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	resp, err := call()

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

	s.state.User = resp.User
	s.state.Token = resp.Token
	s.state.Authenticated = resp.Token != ""
	s.persistLocked()
	return nil
}

// FetchProfile retrieves the profile for the current token. Any rejection
// is treated as an invalid or expired token and forces a logout, clearing
// the persisted token.
func (s *SessionStore) FetchProfile(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	seq := s.seq.next()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	user, err := s.client.Profile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seq.current(seq) {
		return nil, nil
	}

	s.state.Loading = false
	if err != nil {
		s.state.Err = errorMessage(err)
		s.logoutLocked()
		return nil, err
	}

	s.state.User = user
	return user, nil
}

// UpdateProfile modifies the authenticated user's profile.
func (s *SessionStore) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	seq := s.seq.next()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	user, err := s.client.UpdateProfile(ctx, update)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seq.current(seq) {
		return nil, nil
	}

	s.state.Loading = false
	if err != nil {
		s.state.Err = errorMessage(err)
		return nil, err
	}

	s.state.User = user
	return user, nil
}

// Logout destroys the session and clears the persisted token.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutLocked()
}

// ClearError clears only the error field.
func (s *SessionStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
}

func (s *SessionStore) logoutLocked() {
	s.state.User = nil
	s.state.Token = ""
	s.state.Authenticated = false

	if s.tokens != nil {
		if err := s.tokens.Clear(); err != nil && s.logger != nil {
			s.logger.Warn("failed to clear persisted token", "error", err)
		}
	}
}

func (s *SessionStore) persistLocked() {
	if s.tokens == nil || s.state.Token == "" {
		return
	}

	userID := ""
	if s.state.User != nil {
		userID = s.state.User.ID
	}

	if err := s.tokens.Save(s.state.Token, userID); err != nil && s.logger != nil {
		s.logger.Warn("failed to persist token", "error", err)
	}
}
