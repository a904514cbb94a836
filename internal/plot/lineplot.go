package plot

import (
	"fmt"

	"github.com/san-kum/termplot/internal/canvas"
	"github.com/san-kum/termplot/internal/numeric"
	"github.com/san-kum/termplot/internal/style"
)

// Canvas modes.
const (
	ModeBraille = "braille"
	ModeBlock   = "block"
	ModeASCII   = "ascii"
)

// Series is one dataset: parallel x and y coordinate slices.
type Series struct {
	X []float64
	Y []float64
}

// Options configures a Lineplot. Zero values take defaults: Braille mode,
// auto-scaling on, the default theme's series colors.
type Options struct {
	Canvas canvas.Params
	Colors []canvas.Color
	Ops    numeric.Ops

	Title  string
	XLabel string
	YLabel string
	Border string // single, double, ascii, none
	Mode   string

	NoAutoScale bool
}

// Lineplot accumulates datasets and renders them onto a fresh canvas.
type Lineplot struct {
	opts   Options
	ops    numeric.Ops
	pool   *numeric.FloatPool
	series []Series
}

func New(opts Options) *Lineplot {
	if opts.Colors == nil {
		opts.Colors = style.ThemeDefault.Series
	}
	if opts.Mode == "" {
		opts.Mode = ModeBraille
	}
	ops := opts.Ops
	if ops == nil {
		ops = numeric.AutoSelect()
	}
	return &Lineplot{
		opts: opts,
		ops:  ops,
		pool: numeric.NewFloatPool(),
	}
}

// AddY adds a dataset of y values plotted against their indices.
func (p *Lineplot) AddY(y []float64) {
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	p.series = append(p.series, Series{X: x, Y: y})
}

// AddXY adds an x/y dataset. The slices must have equal length.
func (p *Lineplot) AddXY(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("plot: x and y must have the same length: %d vs %d", len(x), len(y))
	}
	p.series = append(p.series, Series{X: x, Y: y})
	return nil
}

// AddFunc samples fn at every x and adds the resulting dataset.
func (p *Lineplot) AddFunc(x []float64, fn func(float64) float64) {
	p.series = append(p.series, Series{X: x, Y: p.ops.Apply(x, fn)})
}

// AddRange samples each fn at n evenly spaced points over [start, end].
func (p *Lineplot) AddRange(start, end float64, n int, fns ...func(float64) float64) error {
	if n < 2 {
		return fmt.Errorf("plot: range needs at least 2 points, got %d", n)
	}
	x := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range x {
		x[i] = start + float64(i)*step
	}
	for _, fn := range fns {
		p.AddFunc(x, fn)
	}
	return nil
}

// AddValues adds loosely typed sequence data (the shape produced by JSON
// decoding). A nil x plots y against its indices.
func (p *Lineplot) AddValues(x, y interface{}) error {
	ys, err := numeric.Values(y)
	if err != nil {
		return fmt.Errorf("plot: y values: %w", err)
	}
	if x == nil {
		p.AddY(ys)
		return nil
	}
	xs, err := numeric.Values(x)
	if err != nil {
		return fmt.Errorf("plot: x values: %w", err)
	}
	return p.AddXY(xs, ys)
}

// Bounds computes the min/max of all series in scaled coordinate space.
// Degenerate ranges are padded by 0.5 on each side so a flat series still
// spans a drawable extent. With no data it reports the unit square.
func (p *Lineplot) Bounds() (minX, maxX, minY, maxY float64, err error) {
	if len(p.series) == 0 {
		return 0, 1, 0, 1, nil
	}

	params := p.opts.Canvas
	xscale := params.XScale
	yscale := params.YScale

	n := 0
	for _, s := range p.series {
		n += len(s.X)
	}
	xs := p.pool.Get(n)
	ys := p.pool.Get(n)
	defer p.pool.Put(xs)
	defer p.pool.Put(ys)

	for _, s := range p.series {
		if xscale != nil {
			xs = append(xs, p.ops.Apply(s.X, xscale)...)
		} else {
			xs = append(xs, s.X...)
		}
		if yscale != nil {
			ys = append(ys, p.ops.Apply(s.Y, yscale)...)
		} else {
			ys = append(ys, s.Y...)
		}
	}

	if minX, err = p.ops.Min(xs); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("plot: x bounds: %w", err)
	}
	if maxX, err = p.ops.Max(xs); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("plot: x bounds: %w", err)
	}
	if minY, err = p.ops.Min(ys); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("plot: y bounds: %w", err)
	}
	if maxY, err = p.ops.Max(ys); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("plot: y bounds: %w", err)
	}

	if minX == maxX {
		minX -= 0.5
		maxX += 0.5
	}
	if minY == maxY {
		minY -= 0.5
		maxY += 0.5
	}
	return minX, maxX, minY, maxY, nil
}

// Render draws all series onto a fresh canvas and returns the framed text.
func (p *Lineplot) Render() (string, error) {
	if p.opts.Mode == ModeASCII {
		return p.renderASCII()
	}

	minX, maxX, minY, maxY, err := p.Bounds()
	if err != nil {
		return "", err
	}

	params := p.opts.Canvas
	if !p.opts.NoAutoScale {
		// Keep the configured pixel extent and stretch the data bounds
		// onto it by composing a normalizing transform with any user
		// scale. Bounds are already in user-scaled space.
		w := params.Width
		if w <= 0 {
			w = canvas.DefaultWidth
		}
		h := params.Height
		if h <= 0 {
			h = canvas.DefaultHeight
		}
		userX := params.XScale
		if userX == nil {
			userX = func(v float64) float64 { return v }
		}
		userY := params.YScale
		if userY == nil {
			userY = func(v float64) float64 { return v }
		}
		rangeX := maxX - minX
		rangeY := maxY - minY
		params.XScale = func(v float64) float64 { return (userX(v) - minX) / rangeX * w }
		params.YScale = func(v float64) float64 { return (userY(v) - minY) / rangeY * h }
		params.OriginX = 0
		params.OriginY = 0
		params.Width = w
		params.Height = h
	}

	cv, err := p.newCanvas(params)
	if err != nil {
		return "", err
	}

	for i, s := range p.series {
		col := p.opts.Colors[i%len(p.opts.Colors)]
		switch len(s.X) {
		case 0:
			continue
		case 1:
			cv.Pixel(s.X[0], s.Y[0], col)
		default:
			last := len(s.X) - 1
			if err := cv.Lines(s.X[:last], s.Y[:last], s.X[1:], s.Y[1:], col); err != nil {
				return "", err
			}
		}
	}

	return Frame(cv.Render(), FrameOptions{
		Width:  cv.Geometry().Cols,
		Title:  p.opts.Title,
		XLabel: p.opts.XLabel,
		YLabel: p.opts.YLabel,
		Border: p.opts.Border,
		MinX:   minX,
		MaxX:   maxX,
		MinY:   minY,
		MaxY:   maxY,
	}), nil
}

func (p *Lineplot) newCanvas(params canvas.Params) (*canvas.Canvas, error) {
	switch p.opts.Mode {
	case ModeBraille:
		return canvas.New(params, canvas.NewBrailleCells(), p.ops), nil
	case ModeBlock:
		return canvas.New(params, canvas.NewBlockCells(), p.ops), nil
	default:
		return nil, fmt.Errorf("plot: unknown canvas mode %q", p.opts.Mode)
	}
}
