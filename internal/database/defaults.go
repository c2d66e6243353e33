package database

import (
	"context"
	"database/sql"
	"fmt"
)

// DefaultSession is the session opened when none is named.
const DefaultSession = "default"

// SeedDefaults ensures the default session exists for new databases. An
// existing default session keeps its settings.
func SeedDefaults(ctx context.Context, db *sql.DB, puzzle, scrambleLength int) error {
	_, err := db.ExecContext(ctx, `
	INSERT INTO sessions(id, name, puzzle, scramble_length)
	VALUES (?, ?, ?, ?)
	ON CONFLICT DO NOTHING;
	`, SessionID(DefaultSession), DefaultSession, puzzle, scrambleLength)
	if err != nil {
		return fmt.Errorf("seed %s session: %w", DefaultSession, err)
	}
	return nil
}
