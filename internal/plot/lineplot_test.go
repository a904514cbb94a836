package plot

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/termplot/internal/canvas"
	"github.com/san-kum/termplot/internal/numeric"
)

func expSeries() ([]float64, []float64) {
	x := make([]float64, 10)
	y := make([]float64, 10)
	for i := range x {
		x[i] = float64(i + 1)
		y[i] = math.Pow(2, float64(i+1))
	}
	return x, y
}

func TestBounds_Linear(t *testing.T) {
	x, y := expSeries()
	p := New(Options{})
	if err := p.AddXY(x, y); err != nil {
		t.Fatal(err)
	}

	minX, maxX, minY, maxY, err := p.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if minX != 1 || maxX != 10 {
		t.Errorf("x bounds = [%v, %v], want [1, 10]", minX, maxX)
	}
	if minY != 2 || maxY != 1024 {
		t.Errorf("y bounds = [%v, %v], want [2, 1024]", minY, maxY)
	}
}

func TestBounds_LogScale(t *testing.T) {
	x, y := expSeries()
	p := New(Options{Canvas: canvas.Params{YScale: math.Log2}})
	if err := p.AddXY(x, y); err != nil {
		t.Fatal(err)
	}

	_, _, minY, maxY, err := p.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if minY != 1 || maxY != 10 {
		t.Errorf("log2 y bounds = [%v, %v], want [1, 10]", minY, maxY)
	}
}

func TestBounds_DegeneratePadded(t *testing.T) {
	p := New(Options{})
	p.AddY([]float64{5, 5, 5})

	_, _, minY, maxY, err := p.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if minY != 4.5 || maxY != 5.5 {
		t.Errorf("flat series y bounds = [%v, %v], want [4.5, 5.5]", minY, maxY)
	}
}

func TestBounds_NoData(t *testing.T) {
	p := New(Options{})
	minX, maxX, minY, maxY, err := p.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if minX != 0 || maxX != 1 || minY != 0 || maxY != 1 {
		t.Errorf("empty bounds = [%v %v %v %v], want unit square", minX, maxX, minY, maxY)
	}
}

func TestAddXY_LengthMismatch(t *testing.T) {
	p := New(Options{})
	if err := p.AddXY([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestAddValues(t *testing.T) {
	p := New(Options{})
	if err := p.AddValues([]interface{}{1.0, 2.0}, []interface{}{3, 4}); err != nil {
		t.Fatalf("AddValues: %v", err)
	}
	if err := p.AddValues(nil, []float64{1, 2, 3}); err != nil {
		t.Fatalf("AddValues y-only: %v", err)
	}
	if len(p.series) != 2 {
		t.Fatalf("series = %d, want 2", len(p.series))
	}
	if p.series[1].X[2] != 2 {
		t.Errorf("y-only x indices = %v", p.series[1].X)
	}
}

func TestAddValues_TypeError(t *testing.T) {
	p := New(Options{})
	err := p.AddValues(nil, []string{"a"})
	if !errors.Is(err, numeric.ErrNotNumeric) {
		t.Fatalf("err = %v, want ErrNotNumeric", err)
	}
}

func TestAddRange(t *testing.T) {
	p := New(Options{})
	if err := p.AddRange(0, 1, 5, math.Sin, math.Cos); err != nil {
		t.Fatal(err)
	}
	if len(p.series) != 2 {
		t.Fatalf("series = %d, want 2", len(p.series))
	}
	s := p.series[0]
	if len(s.X) != 5 || s.X[0] != 0 || s.X[4] != 1 {
		t.Errorf("sampled x = %v", s.X)
	}
	if s.Y[0] != math.Sin(0) || s.Y[4] != math.Sin(1) {
		t.Errorf("sampled y = %v", s.Y)
	}

	if err := p.AddRange(0, 1, 1, math.Sin); err == nil {
		t.Error("expected error for n < 2")
	}
}

func TestRender_RowCount(t *testing.T) {
	p := New(Options{Canvas: canvas.Params{Width: 32, Height: 16, Resolution: 4}, NoAutoScale: true})
	p.AddY([]float64{1, 5, 2, 8, 3})

	out, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if rows := strings.Split(out, "\n"); len(rows) != 16 {
		t.Errorf("unframed render has %d rows, want 16", len(rows))
	}
}

func TestRender_Framed(t *testing.T) {
	p := New(Options{
		Canvas: canvas.Params{Width: 20, Height: 8, Resolution: 1},
		Title:  "peak",
		XLabel: "x",
		YLabel: "y",
		Border: "single",
	})
	p.AddY([]float64{0, 10, 0})

	out, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "peak") {
		t.Error("frame missing title")
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Error("frame missing border corners")
	}
	// Auto-scaled bounds annotated on the frame.
	if !strings.Contains(out, "10") {
		t.Error("frame missing y max annotation")
	}
}

func TestRender_ModeASCII(t *testing.T) {
	p := New(Options{Mode: ModeASCII, Canvas: canvas.Params{Width: 40, Height: 8}})
	p.AddY([]float64{1, 3, 2, 5, 4})

	out, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if out == "" {
		t.Fatal("ascii render is empty")
	}
}

func TestRender_UnknownMode(t *testing.T) {
	p := New(Options{Mode: "sixel"})
	p.AddY([]float64{1, 2})
	if _, err := p.Render(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestRender_Deterministic(t *testing.T) {
	build := func() string {
		p := New(Options{Canvas: canvas.Params{Width: 32, Height: 16, Resolution: 2}})
		p.AddY([]float64{3, 1, 4, 1, 5, 9, 2, 6})
		p.AddY([]float64{2, 7, 1, 8, 2, 8, 1, 8})
		out, err := p.Render()
		if err != nil {
			t.Fatal(err)
		}
		return out
	}
	if build() != build() {
		t.Error("identical plots rendered differently")
	}
}
