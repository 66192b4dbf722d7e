package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresStore is a Postgres-backed [RecordStore] over database/sql with
// the lib/pq driver. One row per session; schema is ensured at construction.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a [PostgresStore] and ensures its schema.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, errors.New("database is required")
	}
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema() error {
	const q = `
CREATE TABLE IF NOT EXISTS auth_sessions (
	session_id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`
	if _, err := s.db.Exec(q); err != nil {
		return fmt.Errorf("ensure auth_sessions schema: %w", err)
	}
	return nil
}

// Save upserts rec by session ID.
func (s *PostgresStore) Save(ctx context.Context, rec Record) error {
	const q = `
INSERT INTO auth_sessions (session_id, user_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (session_id) DO UPDATE SET user_id = $2, created_at = $3`
	if _, err := s.db.ExecContext(ctx, q, rec.SessionID, rec.UserID, rec.CreatedAt); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Find loads the record under sessionID. No rows is not an error.
func (s *PostgresStore) Find(ctx context.Context, sessionID string) (Record, bool, error) {
	const q = `
SELECT user_id, created_at FROM auth_sessions WHERE session_id = $1`

	rec := Record{SessionID: sessionID}
	err := s.db.QueryRowContext(ctx, q, sessionID).Scan(&rec.UserID, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("find session: %w", err)
	}

	return rec, true, nil
}

// Remove deletes the record under sessionID and reports whether a row was
// actually deleted.
func (s *PostgresStore) Remove(ctx context.Context, sessionID string) (bool, error) {
	const q = `DELETE FROM auth_sessions WHERE session_id = $1`

	res, err := s.db.ExecContext(ctx, q, sessionID)
	if err != nil {
		return false, fmt.Errorf("remove session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove session: %w", err)
	}
	return n > 0, nil
}
