package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nycmg/nycmg-cli/internal/models"
)

func TestPayloadFor(t *testing.T) {
	t.Run("sets exactly one ID field", func(t *testing.T) {
		cases := []struct {
			ref  models.EntityRef
			want interactionPayload
		}{
			{models.TrackRef("t1"), interactionPayload{TrackID: "t1"}},
			{models.ArtistRef("a1"), interactionPayload{ArtistID: "a1"}},
			{models.AlbumRef("al1"), interactionPayload{AlbumID: "al1"}},
			{models.CommentRef("c1"), interactionPayload{CommentID: "c1"}},
		}

		for _, tc := range cases {
			got, err := payloadFor(tc.ref)
			if err != nil {
				t.Fatalf("payloadFor(%v): %v", tc.ref, err)
			}
			if got != tc.want {
				t.Errorf("payloadFor(%v) = %+v, want %+v", tc.ref, got, tc.want)
			}
		}
	})

	t.Run("rejects invalid refs", func(t *testing.T) {
		if _, err := payloadFor(models.EntityRef{Kind: "playlist", ID: "p1"}); err == nil {
			t.Error("expected error for unknown kind")
		}
		if _, err := payloadFor(models.TrackRef("")); err == nil {
			t.Error("expected error for empty id")
		}
	})
}

func TestLikeEndpoints(t *testing.T) {
	t.Run("Like posts the tagged payload", func(t *testing.T) {
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/likes" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &body)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		if err := c.Like(context.Background(), models.TrackRef("t1")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if body["track_id"] != "t1" {
			t.Errorf("expected track_id t1, got %v", body)
		}
		if _, ok := body["artist_id"]; ok {
			t.Error("expected artist_id to be omitted")
		}
	})

	t.Run("LikesCount hits the typed path", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/likes/album/al1" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"count": 12}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		count, err := c.LikesCount(context.Background(), models.AlbumRef("al1"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != 12 {
			t.Errorf("expected 12, got %d", count)
		}
	})

	t.Run("CheckLike", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/likes/check" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			w.Write([]byte(`{"liked": true}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		liked, err := c.CheckLike(context.Background(), models.TrackRef("t1"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !liked {
			t.Error("expected liked to be true")
		}
	})
}

func TestFollowEndpoints(t *testing.T) {
	t.Run("FollowingStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/follows/following/u2" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"is_following": true}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		following, err := c.FollowingStatus(context.Background(), "u2")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !following {
			t.Error("expected following status true")
		}
	})

	t.Run("Unfollow uses DELETE on the id path", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete || r.URL.Path != "/follows/u2" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		if err := c.Unfollow(context.Background(), "u2"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestCommentEndpoints(t *testing.T) {
	t.Run("CreateComment includes content alongside the ref", func(t *testing.T) {
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &body)
			w.Write([]byte(`{"comment":{"id":"c1","content":"fire","track_id":"t1"}}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		comment, err := c.CreateComment(context.Background(), models.TrackRef("t1"), "fire")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if body["track_id"] != "t1" || body["content"] != "fire" {
			t.Errorf("unexpected payload %v", body)
		}
		if comment.ID != "c1" {
			t.Errorf("unexpected comment %+v", comment)
		}
	})

	t.Run("Comments lists by typed path", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/comments/track/t1" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"comments":[{"id":"c2"},{"id":"c1"}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		comments, err := c.Comments(context.Background(), models.TrackRef("t1"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(comments) != 2 || comments[0].ID != "c2" {
			t.Errorf("expected server order preserved, got %+v", comments)
		}
	})
}
