package database_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/cubetimer/internal/database"
	"github.com/jask/cubetimer/internal/database/repository"
)

func TestMigrateIsRepeatable(t *testing.T) {
	t.Parallel()
	db, path := openTestDB(t)
	require.NoError(t, database.Migrate(path))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('sessions', 'solves')`).Scan(&n))
	require.Equal(t, 2, n)
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, _ := openTestDB(t)

	require.NoError(t, database.SeedDefaults(ctx, db, 3, 20))
	require.NoError(t, database.SeedDefaults(ctx, db, 4, 40))

	sessions, err := repository.NewSessionRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, database.DefaultSession, sessions[0].Name)
	require.Equal(t, database.SessionID(database.DefaultSession), sessions[0].ID)
	require.Equal(t, 3, sessions[0].Puzzle)
	require.Equal(t, 20, sessions[0].ScrambleLength)
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, _ := openTestDB(t)

	boom := errors.New("boom")
	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO sessions(id, name) VALUES ('x', 'x')`)
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n))
	require.Zero(t, n)
}

func TestForeignKeysCascade(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, _ := openTestDB(t)
	require.NoError(t, database.SeedDefaults(ctx, db, 3, 20))

	solves := repository.NewSolveRepo(db)
	_, err := solves.Insert(ctx, repository.Solve{ID: "a", SessionID: database.SessionID(database.DefaultSession), Centis: 1000})
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM sessions`)
	require.NoError(t, err)
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM solves`).Scan(&n))
	require.Zero(t, n)

	_, err = solves.Insert(ctx, repository.Solve{ID: "b", SessionID: "missing", Centis: 1})
	require.Error(t, err)
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, _ := openTestDB(t)

	require.PanicsWithValue(t, "boom", func() {
		_ = database.WithTx(ctx, db, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO sessions(id, name) VALUES ('x', 'x')`)
			require.NoError(t, err)
			panic("boom")
		})
	})

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n))
	require.Zero(t, n)
}

func TestOpenCreatesDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "deeper", "solves.db")
	db, err := database.OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSessionIDIsStable(t *testing.T) {
	t.Parallel()
	require.Equal(t, database.SessionID("oh"), database.SessionID("oh"))
	require.NotEqual(t, database.SessionID("oh"), database.SessionID("feet"))
	require.Equal(t, repository.SessionID("oh"), database.SessionID("oh"))
}
