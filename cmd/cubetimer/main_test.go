package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/cubetimer/internal/scramble"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// isolate points HOME and the database at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CUBETIMER_CONFIG", "")
	t.Setenv("CUBETIMER_DATABASE_PATH", filepath.Join(home, "cubetimer.db"))
	return home
}

func TestScrambleCommand(t *testing.T) {
	out, err := execute(t, "scramble", "-p", "2", "-n", "11", "-c", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	tbl, err := scramble.TableFor(2)
	require.NoError(t, err)
	for _, line := range lines {
		moves := strings.Fields(line)
		require.Len(t, moves, 11)
		for _, m := range moves {
			require.Contains(t, tbl.Moves, m)
		}
	}
}

func TestScrambleCommandDefaultLength(t *testing.T) {
	out, err := execute(t, "scramble", "-p", "5")
	require.NoError(t, err)
	require.Len(t, strings.Fields(out), scramble.DefaultLength(5))

	_, err = execute(t, "scramble", "-p", "9")
	require.ErrorIs(t, err, scramble.ErrUnknownPuzzle)

	_, err = execute(t, "scramble", "-n", "1099511627776")
	require.ErrorIs(t, err, scramble.ErrInvalidLength)
	_, err = execute(t, "scramble", "-n", "-4")
	require.ErrorIs(t, err, scramble.ErrInvalidLength)
}

func TestStatsAndExport(t *testing.T) {
	home := isolate(t)

	_, err := execute(t, "stats", "nope")
	require.Error(t, err)

	out, err := execute(t, "stats", "default")
	require.NoError(t, err)
	require.Contains(t, out, "default (3x3, 20 moves)")
	require.Contains(t, out, "Number of Times: 0/0")

	path := filepath.Join(home, "default.tsv")
	_, err = execute(t, "export", "default", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestResetNeedsYes(t *testing.T) {
	isolate(t)
	_, err := execute(t, "reset")
	require.Error(t, err)

	out, err := execute(t, "reset", "--yes")
	require.NoError(t, err)
	require.Contains(t, out, "all sessions deleted")
}

func TestConfigInit(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".config", "cubetimer", "config.toml")

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "scramble_length = 20")

	_, err = execute(t, "config", "init")
	require.ErrorContains(t, err, "already exists")
	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	custom := filepath.Join(home, "custom.toml")
	_, err = execute(t, "--config", custom, "config", "init")
	require.NoError(t, err)
	require.FileExists(t, custom)

	out, err = execute(t, "--config", custom, "stats", "default")
	require.NoError(t, err)
	require.Contains(t, out, "default (3x3, 20 moves)")
}
