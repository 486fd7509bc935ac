package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/showcase/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*Record, error) {
	var (
		rec       Record
		createdAt string
		savedAt   string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT token, user_id, username, created_at, saved_at
		FROM session WHERE id = 1
	`).Scan(&rec.Token, &rec.User.ID, &rec.User.Username, &createdAt, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	rec.User.CreatedAt = parseTime(createdAt)
	rec.SavedAt = parseTime(savedAt)
	return &rec, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, rec Record) error {
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (id, token, user_id, username, created_at, saved_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			username = excluded.username,
			created_at = excluded.created_at,
			saved_at = excluded.saved_at
	`, rec.Token, rec.User.ID, rec.User.Username, formatTime(rec.User.CreatedAt), formatTime(rec.SavedAt))
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
