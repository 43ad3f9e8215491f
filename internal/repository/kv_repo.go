package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/tomatick/internal/db"
)

// KVRepo is a SQLite implementation of KeyValueRepository
type KVRepo struct {
	db *db.DB
}

// NewKVRepo creates a new KVRepo
func NewKVRepo(database *db.DB) *KVRepo {
	return &KVRepo{db: database}
}

// Get retrieves the value stored under key
func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query := "SELECT value FROM kv_store WHERE key = ?"

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}

	return value, true, nil
}

// Set stores value under key (insert or replace)
func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}

	return nil
}
