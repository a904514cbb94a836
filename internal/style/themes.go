package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/termplot/internal/canvas"
)

// Theme names series colors and UI styles for plot output.
type Theme struct {
	Name   string
	Series []canvas.Color

	Title  lipgloss.Style
	Border lipgloss.Style
	Label  lipgloss.Style
	Help   lipgloss.Style
}

// Available themes
var (
	ThemeDefault = Theme{
		Name:   "default",
		Series: []canvas.Color{Green, Red, Blue, Yellow},
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Series: []canvas.Color{ANSI256(201), ANSI256(51), Yellow, Purple},
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff00ff")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("#444466")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Series: []canvas.Color{Green, ANSI256(40), ANSI256(34), ANSI256(118)},
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff00")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("#005500")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00cc00")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("#005500")),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Series: []canvas.Color{ANSI256(32), ANSI256(45), ANSI256(220), ANSI256(48)},
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0077be")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("#4488aa")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00a8cc")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4488aa")),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Series: []canvas.Color{ANSI256(203), ANSI256(221), ANSI256(213), ANSI256(77)},
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff6b6b")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("#8b6b8c")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#feca57")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8b6b8c")),
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
