package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/bounce/internal/display"
	"github.com/san-kum/bounce/internal/palette"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 159 || cfg.Height != 37 {
		t.Errorf("expected 159x37, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Interval != 10*time.Millisecond {
		t.Errorf("expected 10ms interval, got %s", cfg.Interval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestEffectiveMaxVelocity(t *testing.T) {
	cfg := DefaultConfig()
	if v := cfg.EffectiveMaxVelocity(); v != 25 {
		t.Errorf("expected derived 25, got %d", v)
	}
	cfg.MaxVelocity = 30
	if v := cfg.EffectiveMaxVelocity(); v != 30 {
		t.Errorf("expected override 30, got %d", v)
	}
}

func TestSettings(t *testing.T) {
	s := DefaultConfig().Settings()
	expected := display.DefaultSettings()
	expected.MaxVelocity = 25
	if s != expected {
		t.Errorf("expected %+v, got %+v", expected, s)
	}
}

func TestDerivedVelocitySmallBoards(t *testing.T) {
	tests := []struct {
		height   int
		min, max int
	}{
		{1, 2, 4},
		{2, 2, 5},
		{3, 3, 7},
		{4, 4, 8},
		{5, display.DefaultMinVelocity, 9},
		{6, display.DefaultMinVelocity, 10},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 10, tt.height

		s := cfg.Settings()
		if s.MinVelocity != tt.min || s.MaxVelocity != tt.max {
			t.Errorf("height %d: expected [%d, %d], got [%d, %d]", tt.height, tt.min, tt.max, s.MinVelocity, s.MaxVelocity)
		}

		d, err := display.New(cfg.Width, cfg.Height)
		if err != nil {
			t.Fatalf("height %d: %v", tt.height, err)
		}
		d.Settings = s
		if err := d.Seed(); err != nil {
			t.Errorf("height %d: seed failed: %v", tt.height, err)
		}
	}
}

func TestExplicitVelocityBoundsAreKept(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Height = 2
	cfg.MinVelocity, cfg.MaxVelocity = 9, 9

	s := cfg.Settings()
	if s.MinVelocity != 9 || s.MaxVelocity != 9 {
		t.Fatalf("explicit bounds changed to [%d, %d]", s.MinVelocity, s.MaxVelocity)
	}
	if err := s.Validate(); err == nil {
		t.Error("expected a degenerate explicit range to be rejected")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative velocity", func(c *Config) { c.MaxVelocity = -5 }},
		{"negative interval", func(c *Config) { c.Interval = -time.Second }},
		{"negative frames", func(c *Config) { c.Frames = -1 }},
		{"unknown palette", func(c *Config) { c.Palette = "plaid" }},
		{"zero tail", func(c *Config) { c.Tail = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Palette = "plaid"
	if err := cfg.Validate(); !errors.Is(err, palette.ErrUnknownPalette) {
		t.Errorf("expected wrapped ErrUnknownPalette, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")

	cfg := DefaultConfig()
	cfg.Width = 80
	cfg.Height = 20
	cfg.Interval = 25 * time.Millisecond
	cfg.Population.Max = 42
	cfg.Palette = "ocean"
	cfg.Seed = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", cfg, loaded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "width: 40\ninterval: 50ms\npopulation:\n  max: 9\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != DefaultHeight {
		t.Errorf("expected 40x%d, got %dx%d", DefaultHeight, cfg.Width, cfg.Height)
	}
	if cfg.Interval != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %s", cfg.Interval)
	}
	if cfg.Population.Max != 9 || cfg.Population.Initial != display.DefaultInitCount {
		t.Errorf("unexpected population %+v", cfg.Population)
	}
	if cfg.Palette != DefaultPalette {
		t.Errorf("expected default palette, got %q", cfg.Palette)
	}
}

func TestLoadIntoKeepsCurrentValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("width: 60\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetPreset("storm", DefaultConfig())
	if err := LoadInto(path, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 60 {
		t.Errorf("expected width 60, got %d", cfg.Width)
	}
	if cfg.Palette != "sunset" || cfg.Population.Max != 2000 {
		t.Errorf("preset values lost: palette %s, max %d", cfg.Palette, cfg.Population.Max)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	base := DefaultConfig()
	base.Width, base.Height = 90, 30

	cfg := GetPreset("calm", base)
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Width != 90 || cfg.Height != 30 {
		t.Errorf("expected base dimensions, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Palette != "ocean" {
		t.Errorf("expected ocean palette, got %s", cfg.Palette)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}

	cfg.Population.Max = 1
	if Presets["calm"].Population.Max == 1 {
		t.Error("GetPreset returned shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent", DefaultConfig()); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, n := range names {
		cfg := GetPreset(n, DefaultConfig())
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", n, err)
		}
		s := cfg.Settings()
		if err := s.Validate(); err != nil {
			t.Errorf("preset %s settings invalid: %v", n, err)
		}
	}
}
