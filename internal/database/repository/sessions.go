package repository

import (
	"context"
	"database/sql"
	"errors"
)

// SessionRepo handles sessions.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Upsert(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, name, puzzle, scramble_length, created_at, updated_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 puzzle=excluded.puzzle,
	 scramble_length=excluded.scramble_length,
	 updated_at=CURRENT_TIMESTAMP;
	`, s.ID, s.Name, s.Puzzle, s.ScrambleLength)
	return err
}

// ByName returns nil when no session has that name.
func (r *SessionRepo) ByName(ctx context.Context, name string) (*Session, error) {
	return r.one(ctx, `SELECT id, name, puzzle, scramble_length, created_at, updated_at FROM sessions WHERE name = ?`, name)
}

// Get returns nil when the id is unknown.
func (r *SessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	return r.one(ctx, `SELECT id, name, puzzle, scramble_length, created_at, updated_at FROM sessions WHERE id = ?`, id)
}

func (r *SessionRepo) one(ctx context.Context, query string, arg any) (*Session, error) {
	var s Session
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&s.ID, &s.Name, &s.Puzzle, &s.ScrambleLength, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepo) List(ctx context.Context) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, puzzle, scramble_length, created_at, updated_at FROM sessions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.Name, &s.Puzzle, &s.ScrambleLength, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SessionRepo) UpdateSettings(ctx context.Context, id string, puzzle, scrambleLength int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sessions SET puzzle = ?, scramble_length = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, puzzle, scrambleLength, id)
	return err
}
