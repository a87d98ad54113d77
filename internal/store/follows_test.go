package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFollowStore(t *testing.T) {
	t.Run("follow flips status and bumps the count on fulfillment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		s := NewFollowStore(newTestClient(server))

		if err := s.Follow(context.Background(), "u1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !s.IsFollowing("u1") {
			t.Error("expected u1 to be followed")
		}
		if got := s.FollowingCount(); got != 1 {
			t.Errorf("expected following count 1, got %d", got)
		}
	})

	t.Run("rejected follow leaves status untouched", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "cannot follow"})
		}))
		defer server.Close()

		s := NewFollowStore(newTestClient(server))

		if err := s.Follow(context.Background(), "u1"); err == nil {
			t.Fatal("expected error")
		}
		if s.IsFollowing("u1") {
			t.Error("expected status unchanged after rejection")
		}
		if got := s.FollowingCount(); got != 0 {
			t.Errorf("expected count unchanged at 0, got %d", got)
		}
		if got := s.Err(); got != "cannot follow" {
			t.Errorf("expected server message, got %q", got)
		}
	})

	t.Run("repeated follow does not double count", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		s := NewFollowStore(newTestClient(server))
		ctx := context.Background()

		s.Follow(ctx, "u1")
		s.Follow(ctx, "u1")

		if got := s.FollowingCount(); got != 1 {
			t.Errorf("expected following count 1 after duplicate follow, got %d", got)
		}
	})

	t.Run("unfollow flips status and decrements, floored at zero", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		s := NewFollowStore(newTestClient(server))
		ctx := context.Background()

		s.Follow(ctx, "u1")
		s.Unfollow(ctx, "u1")

		if s.IsFollowing("u1") {
			t.Error("expected u1 unfollowed")
		}
		if got := s.FollowingCount(); got != 0 {
			t.Errorf("expected count 0, got %d", got)
		}

		// Unfollowing someone never followed must not go negative.
		s.Unfollow(ctx, "u2")
		if got := s.FollowingCount(); got != 0 {
			t.Errorf("expected count floored at 0, got %d", got)
		}
	})

	t.Run("RefreshStatus records the server's answer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]bool{"is_following": true})
		}))
		defer server.Close()

		s := NewFollowStore(newTestClient(server))

		following, err := s.RefreshStatus(context.Background(), "u1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !following || !s.IsFollowing("u1") {
			t.Error("expected following status recorded")
		}
	})

	t.Run("Followers and Following pass through the server lists", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/follows/u1/followers":
				w.Write([]byte(`{"followers": [{"id": "f1"}, {"id": "f2"}]}`))
			case "/follows/u1/following":
				w.Write([]byte(`{"following": [{"id": "g1"}]}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		s := NewFollowStore(newTestClient(server))
		ctx := context.Background()

		followers, err := s.Followers(ctx, "u1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(followers) != 2 {
			t.Errorf("expected 2 followers, got %d", len(followers))
		}

		following, err := s.Following(ctx, "u1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(following) != 1 || following[0].ID != "g1" {
			t.Errorf("unexpected following list %+v", following)
		}
	})
}
