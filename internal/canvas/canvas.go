package canvas

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/termplot/internal/numeric"
)

// ErrLengthMismatch indicates batch coordinate sequences of unequal length.
var ErrLengthMismatch = errors.New("canvas: coordinate sequences must have the same length")

// supersample is the fixed Bresenham oversampling factor. Walking the
// segment at 8x resolution and collapsing back keeps shallow diagonals
// visually connected on the coarse cell grid.
const supersample = 8

// Cells is a pixel-packing policy: it owns per-cell glyph and color state
// and knows how many sub-character pixels one cell holds on each axis.
type Cells interface {
	PixelsPerCharX() int
	PixelsPerCharY() int

	// Init allocates the cell grid. def decorates untouched cells.
	Init(cols, rows int, def Color)

	// Set marks the sub-character pixel at integer pixel coordinates.
	// Out-of-grid coordinates are a silent no-op.
	Set(px, py int, c Color)

	// Render composes the grid into newline-joined rows of decorated
	// glyphs. Pure; callable repeatedly.
	Render() string
}

// Canvas composes a Geometry with a Cells packing policy. When ops is
// non-nil, batch drawing precomputes all endpoints through the numeric
// capability; otherwise it falls back to per-segment scalar drawing.
// Both paths set identical pixels.
type Canvas struct {
	geom  Geometry
	cells Cells
	ops   numeric.Ops
}

// New builds a canvas from params and a packing policy. ops may be nil.
func New(p Params, cells Cells, ops numeric.Ops) *Canvas {
	g := NewGeometry(p, cells.PixelsPerCharX(), cells.PixelsPerCharY())
	cells.Init(g.Cols, g.Rows, g.Params.DefaultColor)
	return &Canvas{geom: g, cells: cells, ops: ops}
}

// NewBraille builds a Braille-cell canvas with the scalar batch path.
func NewBraille(p Params) *Canvas {
	return New(p, NewBrailleCells(), nil)
}

// NewBlock builds a quadrant-block canvas with the scalar batch path.
func NewBlock(p Params) *Canvas {
	return New(p, NewBlockCells(), nil)
}

// Geometry returns the canvas transform.
func (c *Canvas) Geometry() Geometry { return c.geom }

// Pixel sets the single pixel containing the logical point (x, y).
func (c *Canvas) Pixel(x, y float64, col Color) {
	px := int(math.Floor(c.geom.XToPixel(x)))
	py := int(math.Floor(c.geom.YToPixel(y)))
	c.cells.Set(px, py, col)
}

// Line draws a segment between two logical points.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col Color) {
	px1 := int(math.Round(c.geom.XToPixel(x1) * supersample))
	py1 := int(math.Round(c.geom.YToPixel(y1) * supersample))
	px2 := int(math.Round(c.geom.XToPixel(x2) * supersample))
	py2 := int(math.Round(c.geom.YToPixel(y2) * supersample))
	c.drawSegment(px1, py1, px2, py2, col)
}

// Lines draws many segments sharing one color. The four sequences must
// have equal length; on mismatch it fails before drawing anything.
func (c *Canvas) Lines(x1s, y1s, x2s, y2s []float64, col Color) error {
	n := len(x1s)
	if len(y1s) != n || len(x2s) != n || len(y2s) != n {
		return fmt.Errorf("%w: got %d/%d/%d/%d", ErrLengthMismatch,
			len(x1s), len(y1s), len(x2s), len(y2s))
	}
	if c.ops != nil {
		c.vecLines(x1s, y1s, x2s, y2s, col)
		return nil
	}
	for i := 0; i < n; i++ {
		c.Line(x1s[i], y1s[i], x2s[i], y2s[i], col)
	}
	return nil
}

// vecLines maps, rounds and casts whole coordinate sequences up front,
// then walks each precomputed integer segment.
func (c *Canvas) vecLines(x1s, y1s, x2s, y2s []float64, col Color) {
	toX := func(x float64) float64 { return c.geom.XToPixel(x) * supersample }
	toY := func(y float64) float64 { return c.geom.YToPixel(y) * supersample }

	px1 := c.ops.ToInt(c.ops.Round(c.ops.Apply(x1s, toX)))
	py1 := c.ops.ToInt(c.ops.Round(c.ops.Apply(y1s, toY)))
	px2 := c.ops.ToInt(c.ops.Round(c.ops.Apply(x2s, toX)))
	py2 := c.ops.ToInt(c.ops.Round(c.ops.Apply(y2s, toY)))

	for i := range px1 {
		c.drawSegment(px1[i], py1[i], px2[i], py2[i], col)
	}
}

// Render composes the current cell state into a text block, one line per
// cell row. Pure and idempotent.
func (c *Canvas) Render() string {
	return c.cells.Render()
}

type point struct{ x, y int }

// drawSegment runs integer Bresenham over supersampled coordinates,
// collapsing every visited point down by the supersample factor and
// deduplicating, then sets each distinct coarse pixel once.
func (c *Canvas) drawSegment(px1, py1, px2, py2 int, col Color) {
	dx := abs(px2 - px1)
	dy := abs(py2 - py1)
	sx := -1
	if px1 < px2 {
		sx = 1
	}
	sy := -1
	if py1 < py2 {
		sy = 1
	}
	err := dx - dy

	pixels := make(map[point]struct{})
	x, y := px1, py1
	for {
		pixels[point{floorDiv(x, supersample), floorDiv(y, supersample)}] = struct{}{}
		if x == px2 && y == py2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}

	for p := range pixels {
		c.cells.Set(p.x, p.y, col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv rounds toward negative infinity, so pixels just left of or
// above the grid collapse to negative coordinates and clip instead of
// folding onto column or row zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
