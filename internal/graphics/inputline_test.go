package graphics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func typeString(in *InputLine, s string) {
	for _, r := range s {
		in.Dispatch(RuneEvent(r))
	}
}

func TestInputLineTyping(t *testing.T) {
	c := NewCanvas(3, 20)
	in := NewInputLine(c, "name: ")
	require.Equal(t, 6, in.CursorIndex())
	require.Equal(t, 2, in.Row())

	typeString(in, "abc")
	require.Equal(t, "abc", in.Value())
	require.Equal(t, 9, in.CursorIndex())

	in.Render()
	require.Equal(t, "name: abc           ", row(c, 2))
}

func TestInputLineEditing(t *testing.T) {
	c := NewCanvas(3, 20)
	in := NewInputLine(c, "> ")
	typeString(in, "abc")
	in.Dispatch(KeyEvent(EventLeft))
	in.Dispatch(KeyEvent(EventLeft))
	in.Dispatch(RuneEvent('X'))
	require.Equal(t, "aXbc", in.Value())
	require.Equal(t, 4, in.CursorIndex())

	in.Dispatch(KeyEvent(EventBackspace))
	require.Equal(t, "abc", in.Value())
	require.Equal(t, 3, in.CursorIndex())

	in.Dispatch(KeyEvent(EventRight))
	in.Dispatch(KeyEvent(EventRight))
	in.Dispatch(KeyEvent(EventBackspace))
	require.Equal(t, "ab", in.Value())
	in.Dispatch(KeyEvent(EventNone))
	require.Equal(t, "ab", in.Value())
}

func TestInputLineCursorClamps(t *testing.T) {
	c := NewCanvas(1, 20)
	in := NewInputLine(c, ": ")
	in.Dispatch(KeyEvent(EventLeft))
	require.Equal(t, 2, in.CursorIndex())
	in.Dispatch(KeyEvent(EventBackspace))
	require.Equal(t, 2, in.CursorIndex())
	require.Equal(t, "", in.Value())

	typeString(in, "q")
	in.Dispatch(KeyEvent(EventRight))
	in.Dispatch(KeyEvent(EventRight))
	require.Equal(t, 3, in.CursorIndex())
}

// simulate mirrors the input rules on a plain rune slice.
func simulate(events []Event) string {
	var buf []rune
	pos := 0
	for _, ev := range events {
		switch ev.Kind {
		case EventRune:
			buf = append(buf[:pos], append([]rune{ev.Rune}, buf[pos:]...)...)
			pos++
		case EventBackspace:
			if pos > 0 {
				buf = append(buf[:pos-1], buf[pos:]...)
				pos--
			}
		case EventLeft:
			if pos > 0 {
				pos--
			}
		case EventRight:
			if pos < len(buf) {
				pos++
			}
		}
	}
	return string(buf)
}

func TestInputLineMatchesSimulation(t *testing.T) {
	sequences := [][]Event{
		{RuneEvent('a'), RuneEvent('b'), KeyEvent(EventLeft), RuneEvent('c'), KeyEvent(EventRight), RuneEvent('d')},
		{KeyEvent(EventBackspace), RuneEvent('x'), KeyEvent(EventLeft), KeyEvent(EventLeft), KeyEvent(EventBackspace), RuneEvent('y')},
		{RuneEvent('1'), RuneEvent('2'), RuneEvent('3'), KeyEvent(EventLeft), KeyEvent(EventBackspace), KeyEvent(EventBackspace), KeyEvent(EventBackspace), RuneEvent('4')},
		{RuneEvent('s'), KeyEvent(EventNone), KeyEvent(EventRight), KeyEvent(EventRight), RuneEvent('t')},
	}
	for i, seq := range sequences {
		in := NewInputLine(NewCanvas(2, 30), "session name: ")
		for _, ev := range seq {
			in.Dispatch(ev)
		}
		require.Equal(t, simulate(seq), in.Value(), "sequence %d", i)
	}
}

func TestInputLineEnterSubmitsAndBlanks(t *testing.T) {
	c := NewCanvas(2, 12)
	in := NewInputLine(c, ": ")
	typeString(in, "rm 3")
	in.Render()
	require.Equal(t, ": rm 3      ", row(c, 1))

	in.Dispatch(KeyEvent(EventEnter))
	require.True(t, in.Submitted())
	require.Equal(t, strings.Repeat(" ", 12), row(c, 1))
	for _, cell := range in.Cells() {
		require.Equal(t, Blank, cell.Symbol)
	}

	in.Dispatch(RuneEvent('z'))
	in.Dispatch(KeyEvent(EventBackspace))
	require.Equal(t, "rm 3", in.Value())
	require.Equal(t, 6, in.CursorIndex())
}

func TestInputLineLongerThanCanvas(t *testing.T) {
	c := NewCanvas(1, 5)
	in := NewInputLine(c, ": ")
	typeString(in, "abcdef")
	in.Render()
	require.Equal(t, ": abc", row(c, 0))
	require.Equal(t, "abcdef", in.Value())
}

func TestInputLineHide(t *testing.T) {
	c := NewCanvas(1, 6)
	in := NewInputLine(c, ": ")
	typeString(in, "d")
	in.Render()
	in.Hide()
	require.Equal(t, "      ", row(c, 0))
	require.False(t, in.Submitted())
}
