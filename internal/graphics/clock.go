package graphics

import (
	"math"
	"strconv"
	"strings"
)

// Clock draws a time in seconds as big ASCII-art digits with exactly two
// decimal places.
type Clock struct {
	img     *CoverImage
	seconds float64
	digits  string
}

// NewClock places a clock showing StartingTime with its top-left corner at
// (x, y).
func NewClock(c *Canvas, x, y int) *Clock {
	return &Clock{
		img:    NewCoverImage(c, x, y, CellsFromString(StartingTime)),
		digits: "0.00",
	}
}

// SetTime stores the time to show on the next Update. Negative and
// non-finite values become zero.
func (cl *Clock) SetTime(seconds float64) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	cl.seconds = seconds
}

// Time returns the stored time.
func (cl *Clock) Time() float64 { return cl.seconds }

// Update recomputes the digits from the stored time and redraws.
func (cl *Clock) Update() {
	cl.digits = ClockDigits(cl.seconds)
	cl.img.SetText(BigDigits(cl.digits))
}

// Reset zeroes the time and restores StartingTime.
func (cl *Clock) Reset() {
	cl.seconds = 0
	cl.digits = "0.00"
	cl.img.SetText(StartingTime)
}

// Render draws the current digits.
func (cl *Clock) Render() { cl.img.Render() }

// Digits returns the digit string behind the current art, e.g. "10.00".
func (cl *Clock) Digits() string { return cl.digits }

// Cells returns the clock's current cell set.
func (cl *Clock) Cells() []Cell { return cl.img.Cells() }

// ClockDigits rounds seconds to hundredths and pads to two decimals.
// 9.999 becomes "10.00" and 9.3 becomes "9.30".
func ClockDigits(seconds float64) string {
	rounded := math.Round(seconds*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s + ".00"
	}
	for len(s)-dot-1 < 2 {
		s += "0"
	}
	return s[:dot+3]
}

// BigDigits assembles the art for a digit string: each glyph row joined by
// single spaces, rows joined by newlines.
func BigDigits(digits string) string {
	var glyphs [][]string
	for _, r := range digits {
		switch {
		case r == '.':
			glyphs = append(glyphs, strings.Split(DecimalPointGlyph, "\n"))
		case r >= '0' && r <= '9':
			glyphs = append(glyphs, strings.Split(DigitGlyphs[r-'0'], "\n"))
		}
	}
	rows := make([]string, GlyphRows)
	for i := range rows {
		parts := make([]string, len(glyphs))
		for j, g := range glyphs {
			parts[j] = g[i]
		}
		rows[i] = strings.Join(parts, " ")
	}
	return strings.Join(rows, "\n")
}
