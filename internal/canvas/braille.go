package canvas

import "strings"

// Braille patterns pack a 2x4 dot grid per character:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800 is the blank pattern; each dot contributes one
// bit of the code point offset.
const brailleBlank = 0x2800

// brailleBits maps (sub-pixel x, sub-pixel y) to the dot's bit value.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// BrailleCells packs 2x4 sub-character pixels per cell as Braille glyphs.
type BrailleCells struct {
	cellGrid
}

func NewBrailleCells() *BrailleCells { return &BrailleCells{} }

func (*BrailleCells) PixelsPerCharX() int { return 2 }
func (*BrailleCells) PixelsPerCharY() int { return 4 }

func (b *BrailleCells) Set(px, py int, c Color) {
	if px < 0 || py < 0 {
		return
	}
	cx := px / 2
	cy := py / 4
	if cx >= b.cols || cy >= b.rows {
		return
	}
	xIn := px % 2
	yIn := py % 4
	if xIn >= len(brailleBits) || yIn >= len(brailleBits[0]) {
		return
	}
	b.mark(cx, cy, brailleBits[xIn][yIn], c)
}

func (b *BrailleCells) Render() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			glyph := string(rune(brailleBlank + int(b.masks[row][col])))
			sb.WriteString(b.colorAt(row, col).Apply(glyph))
		}
	}
	return sb.String()
}
