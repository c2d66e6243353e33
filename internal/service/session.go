package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jask/cubetimer/internal/database/repository"
	"github.com/jask/cubetimer/internal/scramble"
	"github.com/jask/cubetimer/internal/stats"
)

var (
	ErrNoSession = errors.New("no session open")
	ErrNoSolves  = errors.New("no solves in session")
	ErrNoSolve   = errors.New("no such solve")
)

// SessionService owns the open session: its solves, statistics and the
// scramble waiting for the next solve.
type SessionService struct {
	Sessions  *repository.SessionRepo
	Solves    *repository.SolveRepo
	Generator *scramble.Generator
	Logger    *slog.Logger

	DefaultPuzzle int
	DefaultLength int

	current  *repository.Session
	solves   []repository.Solve
	scramble string
}

// Open loads the named session, creating it with the default settings.
func (s *SessionService) Open(ctx context.Context, name string) error {
	sess, err := s.Sessions.ByName(ctx, name)
	if err != nil {
		return fmt.Errorf("load session %q: %w", name, err)
	}
	if sess == nil {
		puzzle, length := s.defaults()
		sess = &repository.Session{
			ID:             repository.SessionID(name),
			Name:           name,
			Puzzle:         puzzle,
			ScrambleLength: length,
		}
		if err := s.Sessions.Upsert(ctx, *sess); err != nil {
			return fmt.Errorf("create session %q: %w", name, err)
		}
		s.logger().Info("session created", "name", name, "puzzle", puzzle, "scramble_length", length)
	}
	s.current = sess
	if err := s.reload(ctx); err != nil {
		return err
	}
	_, err = s.NewScramble()
	return err
}

func (s *SessionService) defaults() (int, int) {
	puzzle := s.DefaultPuzzle
	if _, err := scramble.TableFor(puzzle); err != nil {
		puzzle = 3
	}
	length := s.DefaultLength
	if length <= 0 {
		length = scramble.DefaultLength(puzzle)
	}
	return puzzle, length
}

func (s *SessionService) reload(ctx context.Context) error {
	solves, err := s.Solves.List(ctx, s.current.ID)
	if err != nil {
		return fmt.Errorf("load solves: %w", err)
	}
	s.solves = solves
	return nil
}

func (s *SessionService) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *SessionService) generator() *scramble.Generator {
	if s.Generator == nil {
		s.Generator = scramble.NewGenerator(nil)
	}
	return s.Generator
}

// Current returns the open session, or the zero value before Open.
func (s *SessionService) Current() repository.Session {
	if s.current == nil {
		return repository.Session{}
	}
	return *s.current
}

// Name is the open session's name.
func (s *SessionService) Name() string { return s.Current().Name }

// SolveList returns the session's solves in order.
func (s *SessionService) SolveList() []repository.Solve { return s.solves }

// Results returns the solves as statistics inputs.
func (s *SessionService) Results() []stats.Result {
	out := make([]stats.Result, len(s.solves))
	for i, sv := range s.solves {
		out[i] = toResult(sv)
	}
	return out
}

func toResult(sv repository.Solve) stats.Result {
	return stats.Result{Centis: sv.Centis, Penalty: stats.Penalty(sv.Penalty)}
}

// Scramble is the scramble for the next solve.
func (s *SessionService) Scramble() string { return s.scramble }

func (s *SessionService) Summary() stats.Summary { return stats.Summarize(s.Results()) }

// NewScramble draws a fresh scramble with the session's settings.
func (s *SessionService) NewScramble() (string, error) {
	if s.current == nil {
		return "", ErrNoSession
	}
	scr, err := s.generator().Generate(s.current.Puzzle, s.current.ScrambleLength)
	if err != nil {
		return "", fmt.Errorf("scramble: %w", err)
	}
	s.scramble = scr
	return scr, nil
}

// AddSolve records a solve of the current scramble and draws the next one.
func (s *SessionService) AddSolve(ctx context.Context, centis int64) (repository.Solve, error) {
	if s.current == nil {
		return repository.Solve{}, ErrNoSession
	}
	sv := repository.Solve{
		ID:        uuid.NewString(),
		SessionID: s.current.ID,
		Centis:    centis,
		Scramble:  s.scramble,
	}
	seq, err := s.Solves.Insert(ctx, sv)
	if err != nil {
		return repository.Solve{}, fmt.Errorf("record solve: %w", err)
	}
	sv.Seq = seq
	s.solves = append(s.solves, sv)
	s.logger().Debug("solve recorded", "session", s.current.Name, "seq", seq, "time", stats.FormatCentis(centis))
	if _, err := s.NewScramble(); err != nil {
		return sv, err
	}
	return sv, nil
}

// DNF marks the latest solve as did-not-finish.
func (s *SessionService) DNF(ctx context.Context) error {
	return s.penalize(ctx, stats.PenaltyDNF)
}

// PlusTwo adds a two second penalty to the latest solve.
func (s *SessionService) PlusTwo(ctx context.Context) error {
	return s.penalize(ctx, stats.PenaltyPlusTwo)
}

func (s *SessionService) penalize(ctx context.Context, p stats.Penalty) error {
	if len(s.solves) == 0 {
		return ErrNoSolves
	}
	last := &s.solves[len(s.solves)-1]
	if err := s.Solves.UpdatePenalty(ctx, last.ID, int(p)); err != nil {
		return fmt.Errorf("penalize solve %d: %w", last.Seq, err)
	}
	last.Penalty = int(p)
	return nil
}

// Solve returns solve n, counted from 1.
func (s *SessionService) Solve(n int) (repository.Solve, error) {
	if n < 1 || n > len(s.solves) {
		return repository.Solve{}, fmt.Errorf("%w: %d", ErrNoSolve, n)
	}
	return s.solves[n-1], nil
}

// AveragesAt returns the AO5 and AO12 as of solve n, blank when too few.
func (s *SessionService) AveragesAt(n int) (ao5, ao12 string) {
	results := s.Results()
	if a, ok := stats.Average(results, 5, n); ok {
		ao5 = a.String()
	}
	if a, ok := stats.Average(results, 12, n); ok {
		ao12 = a.String()
	}
	return ao5, ao12
}

// Delete removes solve n, counted from 1.
func (s *SessionService) Delete(ctx context.Context, n int) error {
	sv, err := s.Solve(n)
	if err != nil {
		return err
	}
	if err := s.Solves.Delete(ctx, sv.ID); err != nil {
		return fmt.Errorf("delete solve %d: %w", n, err)
	}
	if err := s.Solves.Renumber(ctx, s.current.ID); err != nil {
		return fmt.Errorf("renumber solves: %w", err)
	}
	return s.reload(ctx)
}

// DeleteAll removes every solve in the session.
func (s *SessionService) DeleteAll(ctx context.Context) error {
	if s.current == nil {
		return ErrNoSession
	}
	if err := s.Solves.DeleteAll(ctx, s.current.ID); err != nil {
		return fmt.Errorf("delete solves: %w", err)
	}
	s.solves = nil
	return nil
}

// SetPuzzle changes the cube size and draws a new scramble.
func (s *SessionService) SetPuzzle(ctx context.Context, puzzle int) error {
	if s.current == nil {
		return ErrNoSession
	}
	if _, err := scramble.TableFor(puzzle); err != nil {
		return err
	}
	return s.saveSettings(ctx, puzzle, s.current.ScrambleLength)
}

// SetScrambleLength changes the move count and draws a new scramble.
func (s *SessionService) SetScrambleLength(ctx context.Context, length int) error {
	if s.current == nil {
		return ErrNoSession
	}
	if length < 1 {
		return fmt.Errorf("%w: %d", scramble.ErrInvalidLength, length)
	}
	if err := scramble.CheckLength(length); err != nil {
		return err
	}
	return s.saveSettings(ctx, s.current.Puzzle, length)
}

// saveSettings persists new settings only once a scramble has been drawn
// with them, so a session never stores settings it cannot open with.
func (s *SessionService) saveSettings(ctx context.Context, puzzle, length int) error {
	scr, err := s.generator().Generate(puzzle, length)
	if err != nil {
		return fmt.Errorf("scramble: %w", err)
	}
	if err := s.Sessions.UpdateSettings(ctx, s.current.ID, puzzle, length); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.current.Puzzle = puzzle
	s.current.ScrambleLength = length
	s.scramble = scr
	return nil
}

// ExportTSV writes one record per solve: time, ao5, ao12, scramble.
func (s *SessionService) ExportTSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	results := s.Results()
	for i, sv := range s.solves {
		ao5, ao12 := s.AveragesAt(i + 1)
		if err := cw.Write([]string{results[i].String(), ao5, ao12, sv.Scramble}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
