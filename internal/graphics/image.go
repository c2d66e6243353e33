package graphics

// Renderable is anything that can draw itself onto a canvas and have its
// contents replaced. Render order decides z-order: later renders win.
type Renderable interface {
	Render()
	SetCells(cells []Cell)
	Cells() []Cell
}

var (
	_ Renderable = (*Image)(nil)
	_ Renderable = (*CoverImage)(nil)
	_ Renderable = (*WrapImage)(nil)
)

// Image is a set of cells drawn relative to an origin on a shared canvas.
// Replacing its cells neither erases the old ones nor redraws.
type Image struct {
	canvas *Canvas
	x, y   int
	cells  []Cell
}

// NewImage places cells at (x, y) on c. Nothing is drawn until Render.
func NewImage(c *Canvas, x, y int, cells []Cell) *Image {
	return &Image{canvas: c, x: x, y: y, cells: cells}
}

// Render writes every cell onto the canvas in order. When two cells share
// an offset the later one is what remains.
func (im *Image) Render() {
	for _, c := range im.cells {
		im.canvas.Set(im.x+c.DX, im.y+c.DY, c.Symbol)
	}
}

// SetCells swaps in a new cell set. Call Render to show it.
func (im *Image) SetCells(cells []Cell) { im.cells = cells }

// Cells returns the current cell set.
func (im *Image) Cells() []Cell { return im.cells }

// Position returns the origin.
func (im *Image) Position() (x, y int) { return im.x, im.y }

// Canvas returns the canvas the image draws on.
func (im *Image) Canvas() *Canvas { return im.canvas }

// erase blanks the canvas under the current footprint.
func (im *Image) erase() {
	for _, c := range im.cells {
		im.canvas.Set(im.x+c.DX, im.y+c.DY, Blank)
	}
}

// String renders the image on its own, without a canvas, for debugging.
func (im *Image) String() string { return cellsString(im.cells) }

// CoverImage erases its previous footprint whenever its cells are replaced
// and immediately draws the new ones. Use it for anything that can shrink,
// such as a label going from two digits to one.
type CoverImage struct {
	Image
}

// NewCoverImage places cells at (x, y) on c.
func NewCoverImage(c *Canvas, x, y int, cells []Cell) *CoverImage {
	return &CoverImage{Image: Image{canvas: c, x: x, y: y, cells: cells}}
}

// SetCells blanks the old footprint, swaps in cells and renders them.
func (ci *CoverImage) SetCells(cells []Cell) {
	ci.erase()
	ci.cells = cells
	ci.Render()
}

// SetText is SetCells(CellsFromString(s)).
func (ci *CoverImage) SetText(s string) { ci.SetCells(CellsFromString(s)) }
