// Package scramble generates random-move scrambles in WCA notation that
// never turn the same layer twice without a turn on another axis between.
package scramble

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

var (
	ErrUnknownPuzzle       = errors.New("unknown puzzle size")
	ErrInvalidLength       = errors.New("invalid scramble length")
	ErrGenerationExhausted = errors.New("scramble generation exhausted")
)

const (
	// MaxAttempts bounds the draws spent on a single move before giving up.
	MaxAttempts = 1000
	// MaxLength is the longest scramble Moves will produce.
	MaxLength = 1000
)

// Generator draws scrambles from its own random source.
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	MaxAttempts int
}

// NewGenerator returns a generator using r, or a randomly seeded source
// when r is nil.
func NewGenerator(r *rand.Rand) *Generator {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: r, MaxAttempts: MaxAttempts}
}

var std = NewGenerator(nil)

// Generate returns length space-separated moves for the puzzle using the
// process-wide generator.
func Generate(puzzle, length int) (string, error) {
	return std.Generate(puzzle, length)
}

// Generate returns length space-separated moves for the puzzle.
func (g *Generator) Generate(puzzle, length int) (string, error) {
	moves, err := g.Moves(puzzle, length)
	if err != nil {
		return "", err
	}
	return strings.Join(moves, " "), nil
}

// Moves returns length moves for the puzzle, each accepted by rejection
// sampling against the moves before it.
func (g *Generator) Moves(puzzle, length int) ([]string, error) {
	t, err := TableFor(puzzle)
	if err != nil {
		return nil, err
	}
	if err := CheckLength(length); err != nil {
		return nil, err
	}
	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = MaxAttempts
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	history := make([]string, 0, length)
	for len(history) < length {
		move, ok := g.next(t, history, attempts)
		if !ok {
			return nil, fmt.Errorf("%w: no move accepted after %d draws at position %d", ErrGenerationExhausted, attempts, len(history))
		}
		history = append(history, move)
	}
	return history, nil
}

// CheckLength reports ErrInvalidLength unless 0 <= length <= MaxLength.
func CheckLength(length int) error {
	if length < 0 || length > MaxLength {
		return fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidLength, length, MaxLength)
	}
	return nil
}

func (g *Generator) next(t *Table, history []string, attempts int) (string, bool) {
	for i := 0; i < attempts; i++ {
		candidate := t.Moves[g.rng.IntN(len(t.Moves))]
		if !Redundant(t, history, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Redundant reports whether candidate turns a layer that has already been
// turned since the last move on a different axis.
func Redundant(t *Table, history []string, candidate string) bool {
	axis, side := t.Axis(candidate), t.Side(candidate)
	since := 0
	for i := len(history) - 1; i >= 0; i-- {
		if t.Axis(history[i]) != axis {
			since = i + 1
			break
		}
	}
	for _, m := range history[since:] {
		if t.Side(m) == side {
			return true
		}
	}
	return false
}
