package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/cubetimer/internal/database"
)

// SolveRepo handles solves. Seq numbers run 1..n within a session.
type SolveRepo struct {
	db *sql.DB
}

func NewSolveRepo(db *sql.DB) *SolveRepo { return &SolveRepo{db: db} }

// Insert appends the solve after the session's last one and returns its seq.
func (r *SolveRepo) Insert(ctx context.Context, s Solve) (int, error) {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO solves(id, session_id, seq, centis, penalty, scramble, created_at)
	VALUES (?, ?, COALESCE((SELECT MAX(seq) FROM solves WHERE session_id = ?), 0) + 1, ?, ?, ?, CURRENT_TIMESTAMP);
	`, s.ID, s.SessionID, s.SessionID, s.Centis, s.Penalty, s.Scramble)
	if err != nil {
		return 0, err
	}
	var seq int
	err = r.db.QueryRowContext(ctx, `SELECT seq FROM solves WHERE id = ?`, s.ID).Scan(&seq)
	return seq, err
}

func (r *SolveRepo) List(ctx context.Context, sessionID string) ([]Solve, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, seq, centis, penalty, scramble, created_at
	FROM solves WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Solve
	for rows.Next() {
		var s Solve
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Seq, &s.Centis, &s.Penalty, &s.Scramble, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SolveRepo) UpdatePenalty(ctx context.Context, id string, penalty int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE solves SET penalty = ? WHERE id = ?`, penalty, id)
	return err
}

func (r *SolveRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM solves WHERE id = ?`, id)
	return err
}

func (r *SolveRepo) DeleteAll(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM solves WHERE session_id = ?`, sessionID)
	return err
}

// Renumber closes gaps left by deletes.
func (r *SolveRepo) Renumber(ctx context.Context, sessionID string) error {
	solves, err := r.List(ctx, sessionID)
	if err != nil {
		return err
	}
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for i, s := range solves {
			if s.Seq == i+1 {
				continue
			}
			if _, err := tx.ExecContext(ctx, `UPDATE solves SET seq = ? WHERE id = ?`, i+1, s.ID); err != nil {
				return fmt.Errorf("renumber solve %s: %w", s.ID, err)
			}
		}
		return nil
	})
}
