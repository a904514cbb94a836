// Package style provides terminal color and theme definitions for plot
// rendering.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ANSI256 is an xterm 256-color palette index implementing the canvas
// color contract. Values outside [0, 255] render undecorated.
type ANSI256 int

// Invalid renders text without decoration.
const Invalid ANSI256 = -1

// Named palette entries.
const (
	Black  ANSI256 = 0
	White  ANSI256 = 15
	Blue   ANSI256 = 21
	Green  ANSI256 = 46
	Purple ANSI256 = 129
	Red    ANSI256 = 196
	Orange ANSI256 = 208
	Yellow ANSI256 = 226
)

// Apply wraps text in the color's escape sequence with a trailing reset.
func (c ANSI256) Apply(text string) string {
	if c < 0 || c > 255 {
		return text
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", int(c), text)
}

// Styled adapts a lipgloss style to the canvas color contract, so plots
// can reuse theme styles for cell decoration.
type Styled struct {
	style lipgloss.Style
}

func NewStyled(s lipgloss.Style) Styled { return Styled{style: s} }

func (s Styled) Apply(text string) string { return s.style.Render(text) }
