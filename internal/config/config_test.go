package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		t.Error("default canvas extent should be positive")
	}
	if cfg.Canvas.Resolution <= 0 {
		t.Error("default resolution should be positive")
	}
	if cfg.Plot.Mode != "braille" {
		t.Errorf("default mode = %q, want braille", cfg.Plot.Mode)
	}
	if cfg.Live.FPS <= 0 {
		t.Error("default fps should be positive")
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termplot.yaml")
	data := `
canvas:
  width: 32
  height: 16
  resolution: 4
  yflip: true
plot:
  mode: block
  theme: ocean
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 32 || cfg.Canvas.Height != 16 || cfg.Canvas.Resolution != 4 {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	if !cfg.Canvas.YFlip {
		t.Error("yflip not loaded")
	}
	if cfg.Plot.Mode != "block" || cfg.Plot.Theme != "ocean" {
		t.Errorf("plot = %+v", cfg.Plot)
	}
	// Unset fields keep defaults.
	if cfg.Plot.Border != DefaultBorder {
		t.Errorf("border = %q, want default", cfg.Plot.Border)
	}
	if cfg.Live.Samples != DefaultSamples {
		t.Errorf("samples = %d, want default", cfg.Live.Samples)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Plot.Title = "saved"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Plot.Title != "saved" {
		t.Errorf("round trip title = %q", got.Plot.Title)
	}
}

func TestCanvasParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas.OriginX = 3
	cfg.Canvas.XFlip = true

	p := cfg.CanvasParams()
	if p.Width != cfg.Canvas.Width || p.OriginX != 3 || !p.XFlip {
		t.Errorf("params = %+v", p)
	}
}
