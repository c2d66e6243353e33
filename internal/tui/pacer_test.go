package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPacerSteady(t *testing.T) {
	t.Parallel()
	p := newPacer(10 * time.Millisecond)
	start := time.Unix(1000, 0)
	require.Equal(t, 10*time.Millisecond, p.wait(start))
	require.Equal(t, 10*time.Millisecond, p.wait(start.Add(10*time.Millisecond)))
}

func TestPacerShortensAfterSlowFrame(t *testing.T) {
	t.Parallel()
	p := newPacer(10 * time.Millisecond)
	start := time.Unix(1000, 0)
	p.wait(start)
	// the frame due at +10ms finished at +14ms
	require.Equal(t, 6*time.Millisecond, p.wait(start.Add(14*time.Millisecond)))
}

func TestPacerSkipsSleepWhenLate(t *testing.T) {
	t.Parallel()
	p := newPacer(10 * time.Millisecond)
	start := time.Unix(1000, 0)
	p.wait(start)
	require.Zero(t, p.wait(start.Add(35*time.Millisecond)))
	require.Zero(t, p.wait(start.Add(36*time.Millisecond)))
	require.Equal(t, 4*time.Millisecond, p.wait(start.Add(36*time.Millisecond)))
}

func TestPacerResyncsAfterStall(t *testing.T) {
	t.Parallel()
	p := newPacer(10 * time.Millisecond)
	start := time.Unix(1000, 0)
	p.wait(start)
	stalled := start.Add(2 * time.Second)
	require.Zero(t, p.wait(stalled))
	require.Equal(t, 10*time.Millisecond, p.wait(stalled))
}

func TestPacerDefaultInterval(t *testing.T) {
	t.Parallel()
	require.Equal(t, 10*time.Millisecond, newPacer(0).interval)
}
