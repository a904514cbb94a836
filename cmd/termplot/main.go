package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/termplot/internal/canvas"
	"github.com/san-kum/termplot/internal/config"
	"github.com/san-kum/termplot/internal/dataio"
	"github.com/san-kum/termplot/internal/numeric"
	"github.com/san-kum/termplot/internal/plot"
	"github.com/san-kum/termplot/internal/style"
	"github.com/san-kum/termplot/internal/tui"
)

var (
	width      float64
	height     float64
	resolution float64
	originX    float64
	originY    float64
	xflip      bool
	yflip      bool
	title      string
	xlabel     string
	ylabel     string
	border     string
	theme      string
	mode       string
	logY       bool
	// Function sampling range
	from   float64
	to     float64
	points int
	// Live view
	fps     int
	samples int
	// Config file
	configFile string
)

// builtins the fn and live commands can sample.
var builtins = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"sqr":  func(x float64) float64 { return x * x },
	"sqrt": math.Sqrt,
	"exp":  math.Exp,
	"log":  math.Log,
	"abs":  math.Abs,
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "termplot",
		Short: "braille line plots in the terminal",
	}

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "plot series data from a CSV/JSON file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	addPlotFlags(plotCmd)

	fnCmd := &cobra.Command{
		Use:   "fn [name...]",
		Short: "plot built-in functions over a range",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFn,
	}
	addPlotFlags(fnCmd)
	fnCmd.Flags().Float64Var(&from, "from", -math.Pi, "range start")
	fnCmd.Flags().Float64Var(&to, "to", 2*math.Pi, "range end")
	fnCmd.Flags().IntVar(&points, "points", 120, "sample count")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "render the classic peak demo",
		RunE:  runDemo,
	}

	liveCmd := &cobra.Command{
		Use:   "live [fn]",
		Short: "animate a function in a live view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addPlotFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	liveCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "samples per frame")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range style.ThemeNames() {
				th := style.GetTheme(name)
				swatch := ""
				for _, c := range th.Series {
					swatch += c.Apply("⣿")
				}
				fmt.Printf("  %-10s %s\n", name, swatch)
			}
		},
	}

	rootCmd.AddCommand(plotCmd, fnCmd, demoCmd, liveCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "canvas width in logical units")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "canvas height in logical units")
	cmd.Flags().Float64Var(&resolution, "resolution", config.DefaultResolution, "pixels per logical unit")
	cmd.Flags().Float64Var(&originX, "origin-x", 0, "logical x origin")
	cmd.Flags().Float64Var(&originY, "origin-y", 0, "logical y origin")
	cmd.Flags().BoolVar(&xflip, "xflip", false, "flip the x axis")
	cmd.Flags().BoolVar(&yflip, "yflip", false, "flip the y axis")
	cmd.Flags().StringVar(&title, "title", "", "plot title")
	cmd.Flags().StringVar(&xlabel, "xlabel", "", "x axis label")
	cmd.Flags().StringVar(&ylabel, "ylabel", "", "y axis label")
	cmd.Flags().StringVar(&border, "border", config.DefaultBorder, "border style (single|double|ascii|none)")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "canvas mode (braille|block|ascii)")
	cmd.Flags().BoolVar(&logY, "log-y", false, "log2 scale on the y axis")
	cmd.Flags().StringVar(&configFile, "config", "", "YAML config file")
}

// applyConfig loads the config file, letting explicitly set flags win.
func applyConfig(cmd *cobra.Command) error {
	if configFile == "" {
		return nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cmd.Flags().Changed("width") {
		width = cfg.Canvas.Width
	}
	if !cmd.Flags().Changed("height") {
		height = cfg.Canvas.Height
	}
	if !cmd.Flags().Changed("resolution") {
		resolution = cfg.Canvas.Resolution
	}
	if !cmd.Flags().Changed("origin-x") {
		originX = cfg.Canvas.OriginX
	}
	if !cmd.Flags().Changed("origin-y") {
		originY = cfg.Canvas.OriginY
	}
	if !cmd.Flags().Changed("xflip") {
		xflip = cfg.Canvas.XFlip
	}
	if !cmd.Flags().Changed("yflip") {
		yflip = cfg.Canvas.YFlip
	}
	if !cmd.Flags().Changed("border") {
		border = cfg.Plot.Border
	}
	if !cmd.Flags().Changed("theme") {
		theme = cfg.Plot.Theme
	}
	if !cmd.Flags().Changed("mode") {
		mode = cfg.Plot.Mode
	}
	if !cmd.Flags().Changed("title") && cfg.Plot.Title != "" {
		title = cfg.Plot.Title
	}
	if !cmd.Flags().Changed("xlabel") && cfg.Plot.XLabel != "" {
		xlabel = cfg.Plot.XLabel
	}
	if !cmd.Flags().Changed("ylabel") && cfg.Plot.YLabel != "" {
		ylabel = cfg.Plot.YLabel
	}
	if cmd.Flags().Lookup("fps") != nil && !cmd.Flags().Changed("fps") {
		fps = cfg.Live.FPS
	}
	if cmd.Flags().Lookup("samples") != nil && !cmd.Flags().Changed("samples") {
		samples = cfg.Live.Samples
	}
	return nil
}

func canvasParams() canvas.Params {
	p := canvas.Params{
		Width:      width,
		Height:     height,
		Resolution: resolution,
		OriginX:    originX,
		OriginY:    originY,
		XFlip:      xflip,
		YFlip:      yflip,
	}
	if logY {
		p.YScale = math.Log2
	}
	return p
}

func plotOptions() plot.Options {
	th := style.GetTheme(theme)
	return plot.Options{
		Canvas: canvasParams(),
		Colors: th.Series,
		Ops:    numeric.AutoSelect(),
		Title:  title,
		XLabel: xlabel,
		YLabel: ylabel,
		Border: border,
		Mode:   mode,
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	var x, y []float64
	var err error
	if len(args) == 1 {
		x, y, err = dataio.ReadFile(args[0])
	} else {
		x, y, err = dataio.ReadCSV(os.Stdin)
	}
	if err != nil {
		return err
	}

	p := plot.New(plotOptions())
	if x == nil {
		p.AddY(y)
	} else if err := p.AddXY(x, y); err != nil {
		return err
	}

	out, err := p.Render()
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runFn(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}
	if to <= from {
		return fmt.Errorf("invalid range: from=%v to=%v", from, to)
	}

	opts := plotOptions()
	if opts.Title == "" {
		opts.Title = strings.Join(args, ", ")
	}
	p := plot.New(opts)

	fns := make([]func(float64) float64, 0, len(args))
	for _, name := range args {
		fn, ok := builtins[name]
		if !ok {
			return fmt.Errorf("unknown function %q (available: %s)", name, builtinNames())
		}
		fns = append(fns, fn)
	}
	if err := p.AddRange(from, to, points, fns...); err != nil {
		return err
	}

	out, err := p.Render()
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// runDemo draws the canonical two-trace peak directly on the canvas API.
func runDemo(cmd *cobra.Command, args []string) error {
	cv := canvas.New(canvas.Params{Width: 32, Height: 16, Resolution: 4},
		canvas.NewBrailleCells(), numeric.AutoSelect())

	peak := [][2]float64{{0, 16}, {5, 0}, {32, 16}}
	for i := 0; i+1 < len(peak); i++ {
		cv.Line(peak[i][0], peak[i][1], peak[i+1][0], peak[i+1][1], style.Blue)
	}
	rise := [][2]float64{{0, 0}, {5, 5}, {32, 10}}
	for i := 0; i+1 < len(rise); i++ {
		cv.Line(rise[i][0], rise[i][1], rise[i+1][0], rise[i+1][1], style.Red)
	}

	fmt.Println(cv.Render())
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	name := "sin"
	if len(args) == 1 {
		name = args[0]
	}
	fn, ok := builtins[name]
	if !ok {
		return fmt.Errorf("unknown function %q (available: %s)", name, builtinNames())
	}
	return tui.Run(name, fn, canvasParams(), samples, fps)
}

func builtinNames() string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
