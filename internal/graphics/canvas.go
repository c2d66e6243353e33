// Package graphics composites positioned text entities onto a fixed-size
// character grid. A driver owns one Canvas, asks each entity to render in a
// fixed order every frame and prints Snapshot.
package graphics

import "strings"

// Blank is the rune used to erase a cell.
const Blank = ' '

// Canvas is a fixed-size grid of runes. Row 0 is the bottom row and x grows
// to the right, so (0, 0) is the bottom-left corner.
//
// Canvas is not safe for concurrent use; the driver serializes all access.
type Canvas struct {
	height int
	width  int
	grid   [][]rune
}

// NewCanvas creates a canvas of the given size with every cell blank.
// Negative dimensions are treated as zero.
func NewCanvas(height, width int) *Canvas {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	grid := make([][]rune, height)
	for y := range grid {
		row := make([]rune, width)
		for x := range row {
			row[x] = Blank
		}
		grid[y] = row
	}
	return &Canvas{height: height, width: width, grid: grid}
}

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Set writes ch at (x, y). Writes outside the grid are dropped so a
// misplaced entity can never take down the frame loop.
func (c *Canvas) Set(x, y int, ch rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.grid[y][x] = ch
}

// Snapshot returns the grid as text, top row first, rows joined by '\n'.
func (c *Canvas) Snapshot() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y := c.height - 1; y >= 0; y-- {
		for _, r := range c.grid[y] {
			sb.WriteRune(r)
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = Blank
		}
	}
}

func (c *Canvas) at(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Blank
	}
	return c.grid[y][x]
}
