package scramble

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireNoRedundancy checks every token against the run of moves since the
// last different-axis move before it.
func requireNoRedundancy(t *testing.T, tb *Table, moves []string) {
	t.Helper()
	for i, m := range moves {
		p := -1
		for j := i - 1; j >= 0; j-- {
			if tb.Axis(moves[j]) != tb.Axis(m) {
				p = j
				break
			}
		}
		for j := p + 1; j < i; j++ {
			require.NotEqual(t, tb.Side(m), tb.Side(moves[j]), "moves %v: %q at %d repeats layer of %q at %d", moves, m, i, moves[j], j)
		}
	}
}

func TestGenerateThreeByThree(t *testing.T) {
	s, err := Generate(3, 20)
	require.NoError(t, err)

	moves := strings.Split(s, " ")
	require.Len(t, moves, 20)
	tb, err := TableFor(3)
	require.NoError(t, err)
	requireNoRedundancy(t, tb, moves)
}

func TestGenerateLengthAndMembership(t *testing.T) {
	t.Parallel()
	g := NewGenerator(rand.New(rand.NewPCG(7, 11)))
	for puzzle := MinPuzzle; puzzle <= MaxPuzzle; puzzle++ {
		tb, err := TableFor(puzzle)
		require.NoError(t, err)
		for _, length := range []int{1, 2, 5, DefaultLength(puzzle), 150} {
			s, err := g.Generate(puzzle, length)
			require.NoError(t, err)
			moves := strings.Fields(s)
			require.Len(t, moves, length, "puzzle %d", puzzle)
			require.Equal(t, strings.Join(moves, " "), s, "single spaces only")
			for _, m := range moves {
				require.True(t, slices.Contains(tb.Moves, m), "puzzle %d: %q not in table", puzzle, m)
			}
		}
	}
}

func TestGenerateNeverRedundant(t *testing.T) {
	t.Parallel()
	g := NewGenerator(rand.New(rand.NewPCG(3, 5)))
	for puzzle := MinPuzzle; puzzle <= MaxPuzzle; puzzle++ {
		tb, err := TableFor(puzzle)
		require.NoError(t, err)
		for i := 0; i < 50; i++ {
			moves, err := g.Moves(puzzle, 40)
			require.NoError(t, err)
			requireNoRedundancy(t, tb, moves)
		}
	}
}

func TestGenerateZeroLength(t *testing.T) {
	s, err := Generate(2, 0)
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(1, 10)
	require.ErrorIs(t, err, ErrUnknownPuzzle)
	_, err = Generate(8, 10)
	require.ErrorIs(t, err, ErrUnknownPuzzle)
	_, err = Generate(3, -1)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestGenerateLengthCap(t *testing.T) {
	_, err := Generate(3, MaxLength+1)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = Generate(3, 1<<40)
	require.ErrorIs(t, err, ErrInvalidLength)

	moves, err := NewGenerator(rand.New(rand.NewPCG(3, 3))).Moves(7, MaxLength)
	require.NoError(t, err)
	require.Len(t, moves, MaxLength)

	require.NoError(t, CheckLength(0))
	require.ErrorIs(t, CheckLength(-5), ErrInvalidLength)
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	a, err := NewGenerator(rand.New(rand.NewPCG(42, 42))).Generate(4, 40)
	require.NoError(t, err)
	b, err := NewGenerator(rand.New(rand.NewPCG(42, 42))).Generate(4, 40)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRedundant(t *testing.T) {
	tb, err := TableFor(3)
	require.NoError(t, err)

	tests := []struct {
		name      string
		history   []string
		candidate string
		want      bool
	}{
		{"empty history", nil, "R", false},
		{"same layer", []string{"R"}, "R2", true},
		{"opposite face", []string{"R"}, "L'", false},
		{"same layer behind opposite face", []string{"R", "L"}, "R'", true},
		{"separated by other axis", []string{"R", "U"}, "R", false},
		{"other axis then same axis run", []string{"R", "U", "L", "R2"}, "L", true},
		{"earlier run does not count", []string{"U", "F", "R"}, "U2", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Redundant(tb, tt.history, tt.candidate), tt.name)
	}
}

func TestTwoByTwoAxesAreSingleFaces(t *testing.T) {
	tb, err := TableFor(2)
	require.NoError(t, err)
	require.Len(t, tb.Moves, 9)
	require.Len(t, tb.Axes, 3)
	require.True(t, Redundant(tb, []string{"U", "R"}, "R'"))
	require.False(t, Redundant(tb, []string{"R", "U"}, "R'"))
}

func TestTableShapes(t *testing.T) {
	for puzzle := MinPuzzle; puzzle <= MaxPuzzle; puzzle++ {
		tb, err := TableFor(puzzle)
		require.NoError(t, err)
		require.Len(t, tb.Axes, 3)
		require.Len(t, tb.Moves, 3*len(tb.Sides))
		for _, side := range tb.Sides {
			require.Len(t, side, 3)
		}
		require.Equal(t, -1, tb.Axis("Q"))
		require.Equal(t, -1, tb.Side("Q"))
		require.Positive(t, DefaultLength(puzzle))
	}
	require.Zero(t, DefaultLength(9))
}

func TestExhaustedWhenBoundTooSmall(t *testing.T) {
	// A constant source draws the same move every time.
	g := NewGenerator(rand.New(constSource(0x8000_0000_8000_0000)))
	g.MaxAttempts = 5
	_, err := g.Generate(3, 2)
	require.ErrorIs(t, err, ErrGenerationExhausted)
}

type constSource uint64

func (c constSource) Uint64() uint64 { return uint64(c) }
