package repositories

import (
	"database/sql"
	"fmt"

	"github.com/nycmg/nycmg-cli/internal/models"
)

// NotificationRepository is the offline cache of fetched notifications.
// It implements store.NotificationCache.
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a notification repository over an open
// database.
func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Upsert inserts or replaces cached notifications by ID.
func (r *NotificationRepository) Upsert(notifications ...models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO notifications (id, type, title, message, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			type = excluded.type,
			title = excluded.title,
			message = excluded.message,
			is_read = excluded.is_read,
			created_at = excluded.created_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, n := range notifications {
		if _, err := stmt.Exec(n.ID, n.Type, n.Title, n.Message, n.IsRead, n.CreatedAt); err != nil {
			return fmt.Errorf("failed to cache notification %s: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Remove deletes a cached notification. Removing an ID that was never
// cached is not an error.
func (r *NotificationRepository) Remove(id string) error {
	if _, err := r.db.Exec(`DELETE FROM notifications WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove cached notification: %w", err)
	}
	return nil
}

// List returns cached notifications newest-first. A limit of 0 returns
// everything.
func (r *NotificationRepository) List(limit int) ([]models.Notification, error) {
	query := `SELECT id, type, title, message, is_read, created_at
		FROM notifications ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cached notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cached notifications: %w", err)
	}

	return notifications, nil
}

// Purge empties the cache.
func (r *NotificationRepository) Purge() error {
	if _, err := r.db.Exec(`DELETE FROM notifications`); err != nil {
		return fmt.Errorf("failed to purge notification cache: %w", err)
	}
	return nil
}
