package shared

import (
	"testing"
)

func TestMigrations(t *testing.T) {
	t.Run("RunMigrations", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for _, table := range []string{"session", "notifications"} {
			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
			if err != nil {
				t.Errorf("expected table %s to exist: %v", table, err)
			}
		}

		t.Run("idempotent", func(t *testing.T) {
			if err := RunMigrations(db); err != nil {
				t.Errorf("expected re-run to be a no-op, got %v", err)
			}
		})
	})

	t.Run("RollbackMigration", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		t.Run("drops the latest migration's tables", func(t *testing.T) {
			if err := RunMigrations(db); err != nil {
				t.Fatalf("failed to run migrations: %v", err)
			}
			if err := RollbackMigration(db); err != nil {
				t.Fatalf("expected rollback to succeed, got %v", err)
			}

			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='session'").Scan(&name)
			if err == nil {
				t.Error("expected session table to be dropped")
			}
		})

		t.Run("errors when nothing is applied", func(t *testing.T) {
			if err := RollbackMigration(db); err == nil {
				t.Error("expected error when nothing left to rollback")
			}
		})
	})
}
