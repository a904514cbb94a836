// Package tui implements the live plotting view on top of Bubble Tea.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/termplot/internal/canvas"
	"github.com/san-kum/termplot/internal/numeric"
	"github.com/san-kum/termplot/internal/plot"
	"github.com/san-kum/termplot/internal/style"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model animates a function of time onto a Braille canvas: each tick
// shifts the sampling window, producing a scrolling trace.
type Model struct {
	fn     func(float64) float64
	fnName string

	params  canvas.Params
	ops     numeric.Ops
	samples int
	fps     int

	t        float64
	dt       float64
	running  bool
	themeIdx int
	showHelp bool
}

// NewModel builds a live view over fn with the given canvas params.
func NewModel(fnName string, fn func(float64) float64, params canvas.Params, samples, fps int) Model {
	if samples < 2 {
		samples = 2
	}
	if fps <= 0 {
		fps = 30
	}
	return Model{
		fn:      fn,
		fnName:  fnName,
		params:  params,
		ops:     numeric.AutoSelect(),
		samples: samples,
		fps:     fps,
		dt:      0.1,
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = 0
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(style.Themes)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.t += m.dt
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	theme := style.Themes[m.themeIdx]

	span := m.params.Width
	if span <= 0 {
		span = canvas.DefaultWidth
	}
	xs := make([]float64, m.samples)
	step := span / float64(m.samples-1)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	ys := m.ops.Apply(xs, func(x float64) float64 { return m.fn(x + m.t) })

	lp := plot.New(plot.Options{
		Canvas: m.params,
		Colors: theme.Series,
		Ops:    m.ops,
	})
	// Sampling is uniform and precomputed; a failure here would be a bug
	// rather than bad input.
	if err := lp.AddXY(xs, ys); err != nil {
		return err.Error()
	}
	frame, err := lp.Render()
	if err != nil {
		return err.Error()
	}

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	header := headerStyle.Render(fmt.Sprintf("termplot live - %s", m.fnName))
	stats := statusStyle.Render(fmt.Sprintf("%s   t=%.1f   theme=%s", status, m.t, theme.Name))

	out := header + "\n" + canvasStyle.Render(frame) + "\n" + stats
	if m.showHelp {
		out += helpStyle.Render("\nspace pause/resume  r reset  t theme  ? help  q quit")
	}
	return out
}

// Run starts the live view and blocks until the user quits.
func Run(fnName string, fn func(float64) float64, params canvas.Params, samples, fps int) error {
	p := tea.NewProgram(NewModel(fnName, fn, params, samples, fps))
	_, err := p.Run()
	return err
}
