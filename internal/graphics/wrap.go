package graphics

import (
	"strings"
	"unicode/utf8"
)

// WrapImage shows a space-separated token sequence, such as a scramble,
// that may be wider than the canvas. When it does not fit it is broken into
// lines of at most width-1 characters without ever splitting a token.
// Like CoverImage it erases its old footprint when the cells change.
type WrapImage struct {
	Image
}

// NewWrapImage places cells at (x, y) on c. Extra lines hang below y.
func NewWrapImage(c *Canvas, x, y int, cells []Cell) *WrapImage {
	return &WrapImage{Image: Image{canvas: c, x: x, y: y, cells: cells}}
}

// SetCells blanks the old footprint, swaps in cells and renders them.
func (w *WrapImage) SetCells(cells []Cell) {
	w.erase()
	w.cells = cells
	w.Render()
}

// SetText is SetCells(CellsFromString(s)).
func (w *WrapImage) SetText(s string) { w.SetCells(CellsFromString(s)) }

// Text returns the token sequence the image currently holds, with any line
// breaks it introduced folded back into single spaces.
func (w *WrapImage) Text() string {
	rows := strings.Split(cellsString(w.cells), "\n")
	if len(rows) == 1 {
		return rows[0]
	}
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}
	return strings.Join(rows, " ")
}

// Render draws the content, wrapping it first when it is wider than the
// canvas. The wrapped layout becomes the image's footprint.
func (w *WrapImage) Render() {
	text := w.Text()
	limit := w.canvas.Width()
	var layout string
	if utf8.RuneCountInString(text) <= limit {
		layout = text
	} else {
		layout = strings.Join(BreakLines(text, limit-1), "\n")
	}
	if layout != cellsString(w.cells) {
		w.erase()
		w.cells = CellsFromString(layout)
	}
	w.Image.Render()
}

// Clear blanks every canvas cell under the current footprint. The row span
// of a wrapped image changes between renders, so callers clear before
// swapping in content of a different length.
func (w *WrapImage) Clear() { w.erase() }

// Lines returns the number of rows the footprint spans.
func (w *WrapImage) Lines() int {
	if len(w.cells) == 0 {
		return 0
	}
	return strings.Count(cellsString(w.cells), "\n") + 1
}

// BreakLines splits a token sequence into lines of at most width runes,
// cutting only at spaces. Each line is trimmed. A single token longer than
// width is kept whole on its own line; the canvas clips the overflow.
// Joining the result with single spaces gives back the trimmed input.
func BreakLines(s string, width int) []string {
	var lines []string
	rest := strings.TrimSpace(s)
	for rest != "" {
		line, next := breakTopLine(rest, width)
		if next == rest {
			line, next = firstToken(rest)
		}
		lines = append(lines, strings.TrimSpace(line))
		rest = strings.TrimSpace(next)
	}
	return lines
}

// breakTopLine returns the longest leading run of whole tokens that fits in
// width, and what is left. When nothing fits, the remainder is s itself.
func breakTopLine(s string, width int) (line, rest string) {
	runes := []rune(s)
	if len(runes) <= width {
		return s, ""
	}
	cut := -1
	for i := 0; i <= width && i < len(runes); i++ {
		if runes[i] == ' ' {
			cut = i
		}
	}
	if cut <= 0 {
		return "", s
	}
	return string(runes[:cut]), string(runes[cut+1:])
}

func firstToken(s string) (token, rest string) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// WrapPage breaks every line of text wider than width into lines of at most
// width-1 runes with BreakLines. Lines that fit are left as they are.
func WrapPage(text string, width int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if utf8.RuneCountInString(l) <= width {
			out = append(out, l)
			continue
		}
		out = append(out, BreakLines(l, width-1)...)
	}
	return strings.Join(out, "\n")
}
