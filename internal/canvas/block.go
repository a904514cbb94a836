package canvas

import "strings"

// blockBits maps (sub-pixel x, sub-pixel y) to a quadrant bit:
// 0x1 top-left, 0x2 top-right, 0x4 bottom-left, 0x8 bottom-right.
var blockBits = [2][2]uint8{
	{0x1, 0x4},
	{0x2, 0x8},
}

// blockGlyphs indexes the 16 quadrant combinations.
var blockGlyphs = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// BlockCells packs 2x2 sub-character pixels per cell as quadrant block
// glyphs. Coarser than Braille but renders solid on terminals without
// good Braille fonts.
type BlockCells struct {
	cellGrid
}

func NewBlockCells() *BlockCells { return &BlockCells{} }

func (*BlockCells) PixelsPerCharX() int { return 2 }
func (*BlockCells) PixelsPerCharY() int { return 2 }

func (b *BlockCells) Set(px, py int, c Color) {
	if px < 0 || py < 0 {
		return
	}
	cx := px / 2
	cy := py / 2
	if cx >= b.cols || cy >= b.rows {
		return
	}
	xIn := px % 2
	yIn := py % 2
	if xIn >= len(blockBits) || yIn >= len(blockBits[0]) {
		return
	}
	b.mark(cx, cy, blockBits[xIn][yIn], c)
}

func (b *BlockCells) Render() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			glyph := string(blockGlyphs[b.masks[row][col]&0xf])
			sb.WriteString(b.colorAt(row, col).Apply(glyph))
		}
	}
	return sb.String()
}
