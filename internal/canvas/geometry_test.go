package canvas

import (
	"math"
	"testing"
)

func TestNewGeometry_Dimensions(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		ppcX, ppcY int
		pw, ph     int
		cols, rows int
	}{
		{"defaults", Params{}, 2, 4, 128, 64, 64, 16},
		{"demo 32x16 res 4", Params{Width: 32, Height: 16, Resolution: 4}, 2, 4, 128, 64, 64, 16},
		{"aligned up", Params{Width: 3, Height: 5, Resolution: 1}, 2, 4, 4, 8, 2, 2},
		{"block ratios", Params{Width: 10, Height: 10, Resolution: 1}, 2, 2, 10, 10, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeometry(tt.params, tt.ppcX, tt.ppcY)
			if g.PixelWidth != tt.pw || g.PixelHeight != tt.ph {
				t.Errorf("pixels = %dx%d, want %dx%d", g.PixelWidth, g.PixelHeight, tt.pw, tt.ph)
			}
			if g.Cols != tt.cols || g.Rows != tt.rows {
				t.Errorf("cells = %dx%d, want %dx%d", g.Cols, g.Rows, tt.cols, tt.rows)
			}
			if g.Cols*tt.ppcX != g.PixelWidth || g.Rows*tt.ppcY != g.PixelHeight {
				t.Error("pixel extent not an exact multiple of cell extent")
			}
		})
	}
}

func TestGeometry_Transform(t *testing.T) {
	g := NewGeometry(Params{Width: 10, Height: 10, Resolution: 1}, 2, 4)
	// Width 10 aligns to 10 pixels, height 10 aligns to 12.

	if got := g.XToPixel(0); got != 0 {
		t.Errorf("XToPixel(0) = %v, want 0", got)
	}
	if got := g.XToPixel(10); got != 10 {
		t.Errorf("XToPixel(10) = %v, want 10", got)
	}
	if got := g.XToPixel(5); got != 5 {
		t.Errorf("XToPixel(5) = %v, want 5", got)
	}

	// y is screen-inverted by default.
	if got := g.YToPixel(0); got != 12 {
		t.Errorf("YToPixel(0) = %v, want 12", got)
	}
	if got := g.YToPixel(10); got != 0 {
		t.Errorf("YToPixel(10) = %v, want 0", got)
	}
}

func TestGeometry_Flips(t *testing.T) {
	g := NewGeometry(Params{Width: 10, Height: 10, Resolution: 1, XFlip: true, YFlip: true}, 2, 4)

	if got := g.XToPixel(0); got != 10 {
		t.Errorf("xflip: XToPixel(0) = %v, want 10", got)
	}
	if got := g.XToPixel(10); got != 0 {
		t.Errorf("xflip: XToPixel(10) = %v, want 0", got)
	}
	if got := g.YToPixel(0); got != 0 {
		t.Errorf("yflip: YToPixel(0) = %v, want 0", got)
	}
	if got := g.YToPixel(10); got != 12 {
		t.Errorf("yflip: YToPixel(10) = %v, want 12", got)
	}
}

func TestGeometry_Origin(t *testing.T) {
	g := NewGeometry(Params{Width: 10, Height: 10, Resolution: 1, OriginX: 5, OriginY: 5}, 2, 4)
	if got := g.XToPixel(5); got != 0 {
		t.Errorf("XToPixel(origin) = %v, want 0", got)
	}
	if got := g.XToPixel(15); got != 10 {
		t.Errorf("XToPixel(origin+width) = %v, want 10", got)
	}
}

func TestGeometry_Scale(t *testing.T) {
	g := NewGeometry(Params{
		Width: 10, Height: 10, Resolution: 1,
		XScale: math.Log2,
	}, 2, 4)
	if got := g.XToPixel(1024); got != 10 {
		t.Errorf("XToPixel(2^10) with log2 scale = %v, want 10", got)
	}
}

func TestGeometry_OutOfRangeNotClipped(t *testing.T) {
	g := NewGeometry(Params{Width: 10, Height: 10, Resolution: 1}, 2, 4)
	if got := g.XToPixel(-5); got >= 0 {
		t.Errorf("XToPixel(-5) = %v, want negative", got)
	}
	if got := g.XToPixel(20); got <= float64(g.PixelWidth) {
		t.Errorf("XToPixel(20) = %v, want beyond pixel width", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 8, 0},
		{8, 8, 1},
		{-1, 8, -1},
		{-8, 8, -1},
		{-9, 8, -2},
		{0, 8, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
