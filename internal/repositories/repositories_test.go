package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/nycmg/nycmg-cli/internal/models"
	"github.com/nycmg/nycmg-cli/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestTokenRepository(t *testing.T) {
	t.Run("save and load round-trip", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))

		if err := repo.Save("tok-123", "u1"); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		token, userID, err := repo.Load()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if token != "tok-123" || userID != "u1" {
			t.Errorf("unexpected slot contents %q / %q", token, userID)
		}
	})

	t.Run("save replaces the existing token", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))

		repo.Save("tok-old", "u1")
		if err := repo.Save("tok-new", "u2"); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		token, userID, _ := repo.Load()
		if token != "tok-new" || userID != "u2" {
			t.Errorf("expected replacement, got %q / %q", token, userID)
		}
	})

	t.Run("empty slot loads empty values", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))

		token, userID, err := repo.Load()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if token != "" || userID != "" {
			t.Errorf("expected empty slot, got %q / %q", token, userID)
		}
	})

	t.Run("clear empties the slot", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))

		repo.Save("tok-123", "u1")
		if err := repo.Clear(); err != nil {
			t.Fatalf("clear failed: %v", err)
		}

		token, _, _ := repo.Load()
		if token != "" {
			t.Errorf("expected empty slot, got %q", token)
		}

		// Clearing an already empty slot is fine.
		if err := repo.Clear(); err != nil {
			t.Errorf("expected idempotent clear, got %v", err)
		}
	})
}

func TestNotificationRepository(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	sample := []models.Notification{
		{ID: "n1", Type: "like", Title: "New like", Message: "someone liked your track", CreatedAt: base},
		{ID: "n2", Type: "follow", Title: "New follower", Message: "someone followed you", IsRead: true, CreatedAt: base.Add(time.Hour)},
		{ID: "n3", Type: "comment", Title: "New comment", Message: "someone commented", CreatedAt: base.Add(2 * time.Hour)},
	}

	t.Run("upsert and list newest-first", func(t *testing.T) {
		repo := NewNotificationRepository(newTestDB(t))

		if err := repo.Upsert(sample...); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		list, err := repo.List(0)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(list) != 3 {
			t.Fatalf("expected 3 notifications, got %d", len(list))
		}
		if list[0].ID != "n3" || list[2].ID != "n1" {
			t.Errorf("expected newest first, got %s .. %s", list[0].ID, list[2].ID)
		}
	})

	t.Run("upsert replaces by id", func(t *testing.T) {
		repo := NewNotificationRepository(newTestDB(t))

		repo.Upsert(sample[0])
		updated := sample[0]
		updated.IsRead = true
		if err := repo.Upsert(updated); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		list, _ := repo.List(0)
		if len(list) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(list))
		}
		if !list[0].IsRead {
			t.Error("expected is_read updated")
		}
	})

	t.Run("list honors the limit", func(t *testing.T) {
		repo := NewNotificationRepository(newTestDB(t))

		repo.Upsert(sample...)
		list, err := repo.List(2)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(list) != 2 || list[0].ID != "n3" {
			t.Errorf("expected 2 newest, got %+v", list)
		}
	})

	t.Run("remove deletes one row", func(t *testing.T) {
		repo := NewNotificationRepository(newTestDB(t))

		repo.Upsert(sample...)
		if err := repo.Remove("n2"); err != nil {
			t.Fatalf("remove failed: %v", err)
		}

		list, _ := repo.List(0)
		if len(list) != 2 {
			t.Errorf("expected 2 notifications, got %d", len(list))
		}
		for _, n := range list {
			if n.ID == "n2" {
				t.Error("expected n2 removed")
			}
		}

		if err := repo.Remove("missing"); err != nil {
			t.Errorf("expected removing an unknown id to succeed, got %v", err)
		}
	})

	t.Run("purge empties the cache", func(t *testing.T) {
		repo := NewNotificationRepository(newTestDB(t))

		repo.Upsert(sample...)
		if err := repo.Purge(); err != nil {
			t.Fatalf("purge failed: %v", err)
		}

		list, _ := repo.List(0)
		if len(list) != 0 {
			t.Errorf("expected empty cache, got %d", len(list))
		}
	})
}
