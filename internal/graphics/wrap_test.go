package graphics

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

const longScramble = "R U' F2 L D' B2 R' U2 F L' D B' R2 U F' D2 L2"

func TestBreakLines(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "R U F", 10, []string{"R U F"}},
		{"exact", "R U F", 5, []string{"R U F"}},
		{"two lines", "R U F", 4, []string{"R U", "F"}},
		{"token never split", "R2 U2 F2", 4, []string{"R2", "U2", "F2"}},
		{"oversized token kept whole", "RRRRRRRRRR U", 5, []string{"RRRRRRRRRR", "U"}},
		{"oversized token mid sequence", "R LLLLLLLL U", 3, []string{"R", "LLLLLLLL", "U"}},
		{"strips whitespace", "  R U  ", 10, []string{"R U"}},
		{"empty", "", 10, nil},
		{"zero width", "R U", 0, []string{"R", "U"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, BreakLines(tt.in, tt.width))
		})
	}
}

func TestBreakLinesPreservesTokens(t *testing.T) {
	require.GreaterOrEqual(t, len(longScramble), 40)
	for width := 3; width <= 60; width++ {
		lines := BreakLines(longScramble, width)
		for _, l := range lines {
			require.LessOrEqual(t, utf8.RuneCountInString(l), width, "width %d line %q", width, l)
			require.Equal(t, strings.TrimSpace(l), l)
		}
		require.Equal(t, longScramble, strings.Join(lines, " "), "width %d", width)
	}
}

func TestWrapImageWrapsWideScramble(t *testing.T) {
	c := NewCanvas(6, 20)
	w := NewWrapImage(c, 0, 5, CellsFromString(longScramble))
	w.Render()

	require.GreaterOrEqual(t, w.Lines(), 2)
	lines := strings.Split(c.Snapshot(), "\n")
	var drawn []string
	for _, l := range lines[:w.Lines()] {
		l = strings.TrimRight(l, " ")
		require.LessOrEqual(t, len(l), 19)
		drawn = append(drawn, l)
	}
	require.Equal(t, longScramble, strings.Join(drawn, " "))
	require.Equal(t, longScramble, w.Text())
}

func TestWrapImageNarrowContentRendersAsIs(t *testing.T) {
	c := NewCanvas(2, 20)
	w := NewWrapImage(c, 2, 1, CellsFromString("R U R' U'"))
	w.Render()
	require.Equal(t, "  R U R' U'         ", row(c, 1))
	require.Equal(t, 1, w.Lines())
}

func TestWrapImageRenderIsStable(t *testing.T) {
	c := NewCanvas(6, 20)
	w := NewWrapImage(c, 0, 5, CellsFromString(longScramble))
	w.Render()
	first := c.Snapshot()
	w.Render()
	require.Equal(t, first, c.Snapshot())
}

func TestWrapImageSetTextShrinks(t *testing.T) {
	c := NewCanvas(6, 20)
	w := NewWrapImage(c, 0, 5, CellsFromString(longScramble))
	w.Render()

	w.SetText("R U")
	lines := strings.Split(c.Snapshot(), "\n")
	require.Equal(t, "R U", strings.TrimRight(lines[0], " "))
	for _, l := range lines[1:] {
		require.Equal(t, strings.Repeat(" ", 20), l)
	}
}

func TestWrapImageClear(t *testing.T) {
	c := NewCanvas(6, 20)
	w := NewWrapImage(c, 0, 5, CellsFromString(longScramble))
	w.Render()
	w.Clear()
	blank := NewCanvas(6, 20).Snapshot()
	require.Equal(t, blank, c.Snapshot())
}

func TestWrapPage(t *testing.T) {
	page := "STATS\n\nScramble: " + longScramble + "\n\npress any key"
	got := WrapPage(page, 30)
	lines := strings.Split(got, "\n")
	require.Equal(t, "STATS", lines[0])
	require.True(t, strings.HasPrefix(lines[2], "Scramble: "))
	require.Equal(t, "press any key", lines[len(lines)-1])
	for _, l := range lines {
		require.LessOrEqual(t, utf8.RuneCountInString(l), 29, l)
	}
	require.Equal(t, strings.Fields(page), strings.Fields(got))

	require.Equal(t, "a  b\n\nc", WrapPage("a  b\n\nc", 10), "lines that fit keep their spacing")
}
