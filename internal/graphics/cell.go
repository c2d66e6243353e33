package graphics

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidGlyph is returned when a cell is built from anything other than
// exactly one printable character.
var ErrInvalidGlyph = errors.New("invalid glyph")

// Cell is one character drawn at an offset from its entity's origin.
type Cell struct {
	DX, DY int
	Symbol rune
}

// NewCell builds a Cell from a one-character string.
func NewCell(dx, dy int, s string) (Cell, error) {
	if utf8.RuneCountInString(s) != 1 {
		return Cell{}, fmt.Errorf("%w: %q is not a single character", ErrInvalidGlyph, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return Cell{}, fmt.Errorf("%w: %q is not printable", ErrInvalidGlyph, s)
	}
	return Cell{DX: dx, DY: dy, Symbol: r}, nil
}

// CellsFromString lays s out as cells. The first line sits at DY 0 and each
// following line one row lower, so blocks hang downward from the origin.
func CellsFromString(s string) []Cell {
	var cells []Cell
	for i, line := range strings.Split(s, "\n") {
		x := 0
		for _, r := range line {
			cells = append(cells, Cell{DX: x, DY: -i, Symbol: r})
			x++
		}
	}
	return cells
}

// BlankCells returns cells covering the same offsets as cells, all blank.
func BlankCells(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{DX: c.DX, DY: c.DY, Symbol: Blank}
	}
	return out
}

// cellsString rebuilds the text a cell set was made from. Rows run from the
// highest DY down; gaps inside a row become blanks.
func cellsString(cells []Cell) string {
	if len(cells) == 0 {
		return ""
	}
	top, bottom := cells[0].DY, cells[0].DY
	for _, c := range cells {
		top = max(top, c.DY)
		bottom = min(bottom, c.DY)
	}
	rows := make([][]rune, top-bottom+1)
	for _, c := range cells {
		if c.DX < 0 {
			continue
		}
		i := top - c.DY
		for len(rows[i]) <= c.DX {
			rows[i] = append(rows[i], Blank)
		}
		rows[i][c.DX] = c.Symbol
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// cellsWidth is the widest row of a cell set.
func cellsWidth(cells []Cell) int {
	w := 0
	for _, c := range cells {
		w = max(w, c.DX+1)
	}
	return w
}
