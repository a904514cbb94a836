package canvas

// Defaults applied by Params.normalized for zero-valued fields.
const (
	DefaultWidth      = 128.0
	DefaultHeight     = 64.0
	DefaultResolution = 1.0
)

// Color decorates a rendered glyph. The canvas never inspects color
// internals; it only calls Apply on single-character strings.
type Color interface {
	Apply(text string) string
}

// Unstyled is the default cell color: text passes through undecorated.
var Unstyled Color = unstyled{}

type unstyled struct{}

func (unstyled) Apply(text string) string { return text }

// Params configures a canvas. The zero value is usable: unset fields take
// the documented defaults when the canvas is constructed.
type Params struct {
	// Width and Height are the logical extent of the canvas in data units.
	Width  float64
	Height float64

	// Resolution scales logical units to pixels. At resolution 1 one
	// logical unit maps to one pixel before cell alignment.
	Resolution float64

	// OriginX and OriginY locate the logical-space origin.
	OriginX float64
	OriginY float64

	// XFlip inverts the x axis. YFlip disables the default screen
	// inversion of the y axis (by default larger y renders higher up).
	XFlip bool
	YFlip bool

	// Blend reserves merge-on-overlap color semantics. The current
	// behavior is last-write-wins regardless of this flag.
	Blend bool

	// XScale and YScale transform coordinates before the affine mapping
	// (for example log scales). Nil means identity.
	XScale func(float64) float64
	YScale func(float64) float64

	// DefaultColor decorates cells no line has touched. Nil means
	// Unstyled.
	DefaultColor Color
}

func identity(v float64) float64 { return v }

// normalized fills unset fields with defaults.
func (p Params) normalized() Params {
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Height <= 0 {
		p.Height = DefaultHeight
	}
	if p.Resolution <= 0 {
		p.Resolution = DefaultResolution
	}
	if p.XScale == nil {
		p.XScale = identity
	}
	if p.YScale == nil {
		p.YScale = identity
	}
	if p.DefaultColor == nil {
		p.DefaultColor = Unstyled
	}
	return p
}
