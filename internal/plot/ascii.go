package plot

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// renderASCII plots the series with asciigraph, for terminals without
// usable Braille glyphs. asciigraph samples y values evenly, so x
// coordinates are ignored in this mode.
func (p *Lineplot) renderASCII() (string, error) {
	if len(p.series) == 0 {
		return "", fmt.Errorf("plot: no data")
	}

	params := p.opts.Canvas
	width := int(params.Width)
	if width <= 0 {
		width = 80
	}
	height := int(params.Height)
	if height <= 0 {
		height = 16
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(p.opts.Title),
	}

	if len(p.series) == 1 {
		return asciigraph.Plot(p.series[0].Y, opts...), nil
	}
	data := make([][]float64, len(p.series))
	for i, s := range p.series {
		data[i] = s.Y
	}
	return asciigraph.PlotMany(data, opts...), nil
}
