package canvas

// cellGrid holds the mutable state shared by packing policies: one bit
// mask and one color label per character cell. Mask bits only ever grow;
// the color label is overwritten by the most recent pixel landing in the
// cell.
type cellGrid struct {
	cols, rows int
	masks      [][]uint8
	colors     [][]Color
	def        Color
}

func (g *cellGrid) Init(cols, rows int, def Color) {
	if def == nil {
		def = Unstyled
	}
	g.cols = cols
	g.rows = rows
	g.def = def
	g.masks = make([][]uint8, rows)
	g.colors = make([][]Color, rows)
	for i := range g.masks {
		g.masks[i] = make([]uint8, cols)
		g.colors[i] = make([]Color, cols)
	}
}

// mark ORs a bit into a cell and records the color. Callers bound-check
// first.
func (g *cellGrid) mark(cx, cy int, bit uint8, c Color) {
	g.masks[cy][cx] |= bit
	g.colors[cy][cx] = c
}

func (g *cellGrid) colorAt(row, col int) Color {
	if c := g.colors[row][col]; c != nil {
		return c
	}
	return g.def
}
