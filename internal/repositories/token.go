package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// TokenRepository persists the bearer token in the single-row session
// table. It implements store.TokenStore.
type TokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a token repository over an open database.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Save stores the token, replacing any previous one.
func (r *TokenRepository) Save(token, userID string) error {
	query := `
		INSERT INTO session (slot, token, user_id, updated_at)
		VALUES (0, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			updated_at = excluded.updated_at`

	if _, err := r.db.Exec(query, token, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Load returns the persisted token and user ID. An empty slot is not an
// error; both values come back empty.
func (r *TokenRepository) Load() (string, string, error) {
	var token string
	var userID sql.NullString

	err := r.db.QueryRow(`SELECT token, user_id FROM session WHERE slot = 0`).Scan(&token, &userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, userID.String, nil
}

// Clear empties the token slot.
func (r *TokenRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM session WHERE slot = 0`); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
