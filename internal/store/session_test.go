package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/models"
	"github.com/nycmg/nycmg-cli/internal/shared"
)

// memTokenStore is an in-memory TokenStore for session tests.
type memTokenStore struct {
	token  string
	userID string
}

func (m *memTokenStore) Save(token, userID string) error {
	m.token = token
	m.userID = userID
	return nil
}

func (m *memTokenStore) Load() (string, string, error) {
	return m.token, m.userID, nil
}

func (m *memTokenStore) Clear() error {
	m.token = ""
	m.userID = ""
	return nil
}

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login", "/auth/register", "/auth/refresh":
			json.NewEncoder(w).Encode(api.AuthResponse{
				User:  &models.User{ID: "u1", Email: "bk@example.com", Username: "bk"},
				Token: "tok-123",
			})
		case "/auth/profile":
			if r.Header.Get("Authorization") != "Bearer tok-123" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
				return
			}
			w.Write([]byte(`{"user": {"id": "u1", "username": "bk"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSessionStore(t *testing.T) {
	t.Run("login authenticates and persists the token", func(t *testing.T) {
		server := authServer(t)
		tokens := &memTokenStore{}
		s := NewSessionStore(newTestClient(server), tokens, nil)

		err := s.Login(context.Background(), api.Credentials{Email: "bk@example.com", Password: "pw"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		state := s.State()
		if !state.Authenticated || state.Token != "tok-123" {
			t.Errorf("expected authenticated session, got %+v", state)
		}
		if state.User == nil || state.User.ID != "u1" {
			t.Errorf("expected user populated, got %+v", state.User)
		}
		if tokens.token != "tok-123" || tokens.userID != "u1" {
			t.Errorf("expected token persisted, got %q / %q", tokens.token, tokens.userID)
		}
	})

	t.Run("login with missing credentials fails before the network", func(t *testing.T) {
		s := NewSessionStore(api.NewClient("http://127.0.0.1:1", nil), nil, nil)

		err := s.Login(context.Background(), api.Credentials{Email: "bk@example.com"})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
		if s.State().Authenticated {
			t.Error("expected session to remain unauthenticated")
		}
	})

	t.Run("rejected login records the server message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
		}))
		defer server.Close()

		s := NewSessionStore(newTestClient(server), nil, nil)

		err := s.Login(context.Background(), api.Credentials{Email: "bk@example.com", Password: "wrong"})
		if err == nil {
			t.Fatal("expected error")
		}

		state := s.State()
		if state.Authenticated {
			t.Error("expected unauthenticated session")
		}
		if state.Err != "invalid credentials" {
			t.Errorf("expected server message, got %q", state.Err)
		}
	})

	t.Run("restore picks up a persisted token", func(t *testing.T) {
		tokens := &memTokenStore{token: "tok-old", userID: "u1"}
		s := NewSessionStore(api.NewClient("", nil), tokens, nil)

		s.Restore()

		state := s.State()
		if !state.Authenticated || state.Token != "tok-old" {
			t.Errorf("expected restored session, got %+v", state)
		}
	})

	t.Run("rejected profile fetch forces a logout", func(t *testing.T) {
		server := authServer(t)
		tokens := &memTokenStore{token: "tok-stale", userID: "u1"}
		client := newTestClient(server)
		s := NewSessionStore(client, tokens, nil)
		client.SetTokenSource(s.Token)

		s.Restore()
		if _, err := s.FetchProfile(context.Background()); err == nil {
			t.Fatal("expected error for stale token")
		}

		state := s.State()
		if state.Authenticated || state.Token != "" || state.User != nil {
			t.Errorf("expected forced logout, got %+v", state)
		}
		if tokens.token != "" {
			t.Errorf("expected persisted token cleared, got %q", tokens.token)
		}
	})

	t.Run("profile fetch succeeds with a live token", func(t *testing.T) {
		server := authServer(t)
		client := newTestClient(server)
		s := NewSessionStore(client, &memTokenStore{}, nil)
		client.SetTokenSource(s.Token)

		ctx := context.Background()
		if err := s.Login(ctx, api.Credentials{Email: "bk@example.com", Password: "pw"}); err != nil {
			t.Fatalf("login failed: %v", err)
		}

		user, err := s.FetchProfile(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user == nil || user.Username != "bk" {
			t.Errorf("unexpected user %+v", user)
		}
	})

	t.Run("logout clears state and the persisted token", func(t *testing.T) {
		server := authServer(t)
		tokens := &memTokenStore{}
		s := NewSessionStore(newTestClient(server), tokens, nil)

		s.Login(context.Background(), api.Credentials{Email: "bk@example.com", Password: "pw"})
		s.Logout()

		state := s.State()
		if state.Authenticated || state.Token != "" || state.User != nil {
			t.Errorf("expected cleared session, got %+v", state)
		}
		if tokens.token != "" {
			t.Errorf("expected persisted token cleared, got %q", tokens.token)
		}
	})

	t.Run("refresh replaces the token", func(t *testing.T) {
		tokens := &memTokenStore{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(api.AuthResponse{
				User:  &models.User{ID: "u1"},
				Token: "tok-fresh",
			})
		}))
		defer server.Close()

		s := NewSessionStore(newTestClient(server), tokens, nil)

		if err := s.Refresh(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := s.Token(); got != "tok-fresh" {
			t.Errorf("expected refreshed token, got %q", got)
		}
		if tokens.token != "tok-fresh" {
			t.Errorf("expected refreshed token persisted, got %q", tokens.token)
		}
	})
}
