package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/termplot/internal/canvas"
)

const (
	DefaultWidth      = 64.0
	DefaultHeight     = 16.0
	DefaultResolution = 1.0
	DefaultMode       = "braille"
	DefaultBorder     = "single"
	DefaultTheme      = "default"
	DefaultFPS        = 30
	DefaultSamples    = 120
)

type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Plot   PlotConfig   `yaml:"plot"`
	Live   LiveConfig   `yaml:"live"`
}

type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Resolution float64 `yaml:"resolution"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	XFlip      bool    `yaml:"xflip"`
	YFlip      bool    `yaml:"yflip"`
	Blend      bool    `yaml:"blend"`
}

type PlotConfig struct {
	Mode   string `yaml:"mode"`
	Border string `yaml:"border"`
	Theme  string `yaml:"theme"`
	Title  string `yaml:"title"`
	XLabel string `yaml:"xlabel"`
	YLabel string `yaml:"ylabel"`
}

type LiveConfig struct {
	FPS     int `yaml:"fps"`
	Samples int `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Resolution: DefaultResolution,
		},
		Plot: PlotConfig{
			Mode:   DefaultMode,
			Border: DefaultBorder,
			Theme:  DefaultTheme,
		},
		Live: LiveConfig{
			FPS:     DefaultFPS,
			Samples: DefaultSamples,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CanvasParams translates the canvas section into construction params.
func (c *Config) CanvasParams() canvas.Params {
	return canvas.Params{
		Width:      c.Canvas.Width,
		Height:     c.Canvas.Height,
		Resolution: c.Canvas.Resolution,
		OriginX:    c.Canvas.OriginX,
		OriginY:    c.Canvas.OriginY,
		XFlip:      c.Canvas.XFlip,
		YFlip:      c.Canvas.YFlip,
		Blend:      c.Canvas.Blend,
	}
}
