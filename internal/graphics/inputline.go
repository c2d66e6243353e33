package graphics

import "unicode/utf8"

// EventKind classifies a decoded key press.
type EventKind int

const (
	EventNone EventKind = iota
	EventRune
	EventBackspace
	EventEnter
	EventLeft
	EventRight
)

// Event is one decoded key press. Rune is set only for EventRune.
type Event struct {
	Kind EventKind
	Rune rune
}

// RuneEvent is a printable key press.
func RuneEvent(r rune) Event { return Event{Kind: EventRune, Rune: r} }

// KeyEvent is a non-printable key press.
func KeyEvent(kind EventKind) Event { return Event{Kind: kind} }

// InputLine is a one-row text field on the top row of the canvas, made of
// a fixed prompt followed by what the user typed. Enter submits it, after
// which it ignores further input.
type InputLine struct {
	Image
	prompt    string
	promptLen int
	cursor    int
	content   []rune
	submitted bool
}

// NewInputLine creates an input line with the cursor right after prompt.
func NewInputLine(c *Canvas, prompt string) *InputLine {
	n := utf8.RuneCountInString(prompt)
	in := &InputLine{
		Image:     Image{canvas: c, x: 0, y: c.Height() - 1},
		prompt:    prompt,
		promptLen: n,
		cursor:    n,
	}
	in.rebuild()
	return in
}

// Dispatch applies one key press. It is a no-op once the line has been
// submitted.
func (in *InputLine) Dispatch(ev Event) {
	if in.submitted {
		return
	}
	switch ev.Kind {
	case EventRune:
		at := in.cursor - in.promptLen
		in.content = append(in.content, 0)
		copy(in.content[at+1:], in.content[at:])
		in.content[at] = ev.Rune
		in.cursor++
		in.rebuild()
	case EventBackspace:
		if in.cursor > in.promptLen {
			at := in.cursor - in.promptLen - 1
			in.content = append(in.content[:at], in.content[at+1:]...)
			in.rebuild()
			in.cursor--
		}
	case EventLeft:
		if in.cursor > in.promptLen {
			in.cursor--
		}
	case EventRight:
		if in.cursor < in.promptLen+len(in.content) {
			in.cursor++
		}
	case EventEnter:
		in.submitted = true
		in.cells = BlankCells(in.cells)
		in.Render()
	}
}

// Value returns the typed text without the prompt.
func (in *InputLine) Value() string { return string(in.content) }

// Submitted reports whether Enter has been pressed.
func (in *InputLine) Submitted() bool { return in.submitted }

// CursorIndex is the cursor column within the displayed row, prompt
// included.
func (in *InputLine) CursorIndex() int { return in.cursor }

// Prompt returns the fixed prompt.
func (in *InputLine) Prompt() string { return in.prompt }

// Row returns the canvas row the line is drawn on.
func (in *InputLine) Row() int { return in.y }

// Hide blanks the row under the line without changing its state.
func (in *InputLine) Hide() { in.erase() }

// rebuild lays out prompt, content and blank padding to the canvas width.
func (in *InputLine) rebuild() {
	text := make([]rune, 0, max(in.canvas.Width(), in.promptLen+len(in.content)))
	text = append(text, []rune(in.prompt)...)
	text = append(text, in.content...)
	for len(text) < in.canvas.Width() {
		text = append(text, Blank)
	}
	cells := make([]Cell, len(text))
	for i, r := range text {
		cells[i] = Cell{DX: i, Symbol: r}
	}
	in.cells = cells
}
