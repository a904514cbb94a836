package plot

import (
	"fmt"
	"strconv"
	"strings"
)

type borderChars struct {
	h, v           rune
	tl, tr, bl, br rune
}

var borders = map[string]borderChars{
	"single": {'─', '│', '┌', '┐', '└', '┘'},
	"double": {'═', '║', '╔', '╗', '╚', '╝'},
	"ascii":  {'-', '|', '+', '+', '+', '+'},
}

// FrameOptions configures the decorated frame around a rendered canvas.
// Width is the canvas width in character cells; rendered rows may carry
// ANSI escapes, so the frame never measures them.
type FrameOptions struct {
	Width  int
	Title  string
	XLabel string
	YLabel string
	Border string // single, double, ascii; anything else frames nothing
	MinX   float64
	MaxX   float64
	MinY   float64
	MaxY   float64
}

// Frame wraps rendered canvas text with a border, centered title, y-axis
// bounds on the left margin, and an x annotation line underneath. Without
// a border style only the title line is added.
func Frame(content string, o FrameOptions) string {
	b, ok := borders[o.Border]
	if !ok {
		if o.Title == "" {
			return content
		}
		return center(o.Title, o.Width) + "\n" + content
	}

	rows := strings.Split(content, "\n")
	ymax := formatBound(o.MaxY)
	ymin := formatBound(o.MinY)

	margin := len(ymax)
	if len(ymin) > margin {
		margin = len(ymin)
	}
	if len(o.YLabel) > margin {
		margin = len(o.YLabel)
	}
	pad := func(s string) string { return fmt.Sprintf("%*s", margin, s) }

	var sb strings.Builder
	sb.WriteString(pad(""))
	sb.WriteRune(b.tl)
	sb.WriteString(titledRule(o.Title, o.Width, b.h))
	sb.WriteRune(b.tr)
	sb.WriteByte('\n')

	for i, row := range rows {
		label := ""
		switch {
		case i == 0:
			label = ymax
		case i == len(rows)-1:
			label = ymin
		case i == len(rows)/2 && o.YLabel != "":
			label = o.YLabel
		}
		sb.WriteString(pad(label))
		sb.WriteRune(b.v)
		sb.WriteString(row)
		sb.WriteRune(b.v)
		sb.WriteByte('\n')
	}

	sb.WriteString(pad(""))
	sb.WriteRune(b.bl)
	sb.WriteString(strings.Repeat(string(b.h), o.Width))
	sb.WriteRune(b.br)
	sb.WriteByte('\n')

	sb.WriteString(pad(""))
	sb.WriteByte(' ')
	sb.WriteString(xAnnotation(formatBound(o.MinX), o.XLabel, formatBound(o.MaxX), o.Width))
	return sb.String()
}

// titledRule builds a horizontal rule of the given width with the title
// spliced into the middle when it fits.
func titledRule(title string, width int, h rune) string {
	if title == "" || len(title)+2 > width {
		return strings.Repeat(string(h), width)
	}
	t := " " + title + " "
	left := (width - len(t)) / 2
	right := width - len(t) - left
	return strings.Repeat(string(h), left) + t + strings.Repeat(string(h), right)
}

// xAnnotation lays out min, centered label and max on one line.
func xAnnotation(min, label, max string, width int) string {
	line := make([]byte, width)
	for i := range line {
		line[i] = ' '
	}
	copy(line, min)
	if n := len(max); n <= width {
		copy(line[width-n:], max)
	}
	if label != "" {
		start := (width - len(label)) / 2
		if start > len(min) && start+len(label) < width-len(max) {
			copy(line[start:], label)
		}
	}
	return string(line)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
