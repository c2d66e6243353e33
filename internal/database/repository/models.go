package repository

import (
	"time"

	"github.com/jask/cubetimer/internal/database"
)

// Session represents a session row.
type Session struct {
	ID             string
	Name           string
	Puzzle         int
	ScrambleLength int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Solve represents a solve row. Penalty holds a stats.Penalty value.
type Solve struct {
	ID        string
	SessionID string
	Seq       int
	Centis    int64
	Penalty   int
	Scramble  string
	CreatedAt time.Time
}

// SessionID derives the stable id of a named session.
func SessionID(name string) string { return database.SessionID(name) }
