package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// LoadSession returns the stored state blob for id, or nil if there is none.
func (d *DB) LoadSession(ctx context.Context, id string) ([]byte, error) {
	var state string
	err := d.sql.QueryRowContext(ctx, `SELECT state FROM sessions WHERE id = ?`, id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return []byte(state), nil
}

// SaveSession stores the state blob for id.
func (d *DB) SaveSession(ctx context.Context, id string, state []byte) error {
	_, err := d.sql.ExecContext(ctx, `
		INSERT INTO sessions (id, state, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		id, string(state))
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// PruneSessions removes sessions idle for more than days.
func (d *DB) PruneSessions(ctx context.Context, days int) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		`DELETE FROM sessions WHERE updated_at < datetime('now', ?)`,
		fmt.Sprintf("-%d days", days))
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	return res.RowsAffected()
}
