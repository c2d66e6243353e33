package graphics

// DefaultCursorGlyph is the full-block character.
const DefaultCursorGlyph = '█'

// BlinkState is the visible half of the cursor's blink cycle.
type BlinkState int

const (
	// BlinkShown draws the cursor glyph.
	BlinkShown BlinkState = iota
	// BlinkHidden draws the background glyph.
	BlinkHidden
)

func (s BlinkState) String() string {
	if s == BlinkHidden {
		return "hidden"
	}
	return "shown"
}

// Cursor is a single cell that moves around the canvas. Move only does the
// bookkeeping and erases the old spot; Render draws the new one.
type Cursor struct {
	canvas     *Canvas
	x, y       int
	prevX      int
	prevY      int
	glyph      rune
	background rune
	state      BlinkState
}

// NewCursor creates a visible cursor at (0, 0). background is what the
// cursor shows during the hidden half of a blink.
func NewCursor(c *Canvas, glyph, background rune) *Cursor {
	if glyph == 0 {
		glyph = DefaultCursorGlyph
	}
	if background == 0 {
		background = Blank
	}
	return &Cursor{canvas: c, glyph: glyph, background: background}
}

// Move blanks the spot the cursor was drawn at and records (x, y) as the
// new position.
func (cu *Cursor) Move(x, y int) {
	cu.canvas.Set(cu.x, cu.y, Blank)
	cu.prevX, cu.prevY = cu.x, cu.y
	cu.x, cu.y = x, y
}

// Render draws the glyph for the current blink state at the current
// position.
func (cu *Cursor) Render() {
	cu.canvas.Set(cu.x, cu.y, cu.Glyph())
}

// ToggleBlink flips between the cursor glyph and the background glyph.
// The driver calls it on a fixed cadence; the cursor keeps no clock.
func (cu *Cursor) ToggleBlink() {
	if cu.state == BlinkShown {
		cu.state = BlinkHidden
	} else {
		cu.state = BlinkShown
	}
}

// Hide switches to the background glyph and renders once.
func (cu *Cursor) Hide() {
	cu.state = BlinkHidden
	cu.Render()
}

// Show switches back to the cursor glyph without rendering.
func (cu *Cursor) Show() { cu.state = BlinkShown }

// Glyph returns the rune the cursor currently draws.
func (cu *Cursor) Glyph() rune {
	if cu.state == BlinkHidden {
		return cu.background
	}
	return cu.glyph
}

// State returns the blink state.
func (cu *Cursor) State() BlinkState { return cu.state }

// Position returns where the cursor is.
func (cu *Cursor) Position() (x, y int) { return cu.x, cu.y }

// Previous returns where the cursor was before the last Move.
func (cu *Cursor) Previous() (x, y int) { return cu.prevX, cu.prevY }
