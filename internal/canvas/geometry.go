package canvas

import "math"

// Geometry is the immutable logical-to-pixel transform for one canvas.
// Pixel extents are the logical extent scaled by resolution, rounded up
// so every character cell is fully backed by pixels.
type Geometry struct {
	Params Params

	PixelWidth  int
	PixelHeight int

	Cols int
	Rows int
}

// NewGeometry derives pixel and cell dimensions from params and a
// packing policy's pixels-per-character ratios.
func NewGeometry(p Params, ppcX, ppcY int) Geometry {
	p = p.normalized()
	pw := alignUp(int(math.Ceil(p.Width*p.Resolution)), ppcX)
	ph := alignUp(int(math.Ceil(p.Height*p.Resolution)), ppcY)
	return Geometry{
		Params:      p,
		PixelWidth:  pw,
		PixelHeight: ph,
		Cols:        pw / ppcX,
		Rows:        ph / ppcY,
	}
}

// XToPixel maps a logical x coordinate to a pixel-space coordinate.
// Out-of-range input is not clipped here; it legally maps outside
// [0, PixelWidth).
func (g Geometry) XToPixel(x float64) float64 {
	frac := (g.Params.XScale(x) - g.Params.OriginX) / g.Params.Width
	if g.Params.XFlip {
		frac = 1 - frac
	}
	return frac * float64(g.PixelWidth)
}

// YToPixel maps a logical y coordinate to a pixel-space coordinate.
// Row 0 is the top of the screen, so the axis is inverted unless YFlip
// is set.
func (g Geometry) YToPixel(y float64) float64 {
	frac := (g.Params.YScale(y) - g.Params.OriginY) / g.Params.Height
	if !g.Params.YFlip {
		frac = 1 - frac
	}
	return frac * float64(g.PixelHeight)
}

func alignUp(v, multiple int) int {
	if v < multiple {
		return multiple
	}
	if rem := v % multiple; rem != 0 {
		return v + multiple - rem
	}
	return v
}
