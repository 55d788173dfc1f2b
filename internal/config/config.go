package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/bounce/internal/display"
	"github.com/san-kum/bounce/internal/palette"
	"github.com/san-kum/bounce/internal/trajectory"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 159
	DefaultHeight   = 37
	DefaultInterval = 10 * time.Millisecond
	DefaultPalette  = "classic"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// MaxVelocity of 0 derives the value from Height.
	MaxVelocity int              `yaml:"max_velocity"`
	MinVelocity int              `yaml:"min_velocity"`
	Population  PopulationConfig `yaml:"population"`
	Interval    time.Duration    `yaml:"interval"`
	Frames      int              `yaml:"frames"`
	Palette     string           `yaml:"palette"`
	Seed        uint64           `yaml:"seed"`
	// Tail is how many recent cells each block keeps lit.
	Tail      int  `yaml:"tail"`
	ShowCount bool `yaml:"show_count"`
}

type PopulationConfig struct {
	Max            int     `yaml:"max"`
	Initial        int     `yaml:"initial"`
	InjectCount    int     `yaml:"inject_count"`
	InjectInterval float64 `yaml:"inject_interval"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MinVelocity: display.DefaultMinVelocity,
		Population: PopulationConfig{
			Max:            display.DefaultMaxCount,
			Initial:        display.DefaultInitCount,
			InjectCount:    display.DefaultInjectCount,
			InjectInterval: display.DefaultInjectInterval,
		},
		Interval: DefaultInterval,
		Palette:  DefaultPalette,
		Tail:     display.DefaultTailLength,
	}
}

// Load reads a config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a config file over cfg. Keys missing from the file keep
// their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks what can be checked before any object is built.
// The velocity range itself is checked again by display.Seed.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MaxVelocity < 0 || c.MinVelocity < 0 {
		return fmt.Errorf("%w: velocities must not be negative", ErrInvalidConfig)
	}
	if c.Interval < 0 {
		return fmt.Errorf("%w: interval must not be negative, got %s", ErrInvalidConfig, c.Interval)
	}
	if c.Tail < 1 {
		return fmt.Errorf("%w: tail must be at least 1, got %d", ErrInvalidConfig, c.Tail)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalidConfig, c.Frames)
	}
	if _, err := palette.Lookup(c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// EffectiveMaxVelocity is MaxVelocity, or the height-derived default when unset.
func (c *Config) EffectiveMaxVelocity() int {
	if c.MaxVelocity > 0 {
		return c.MaxVelocity
	}
	return trajectory.DefaultMaxVelocity(c.Height)
}

// EffectiveMinVelocity is MinVelocity, lowered to half the derived maximum
// when MaxVelocity is unset and the derived value would not exceed it. Small
// boards derive a low maximum. An explicit MaxVelocity is never adjusted.
func (c *Config) EffectiveMinVelocity() int {
	if c.MaxVelocity > 0 {
		return c.MinVelocity
	}
	if hi := c.EffectiveMaxVelocity(); c.MinVelocity >= hi {
		return hi / 2
	}
	return c.MinVelocity
}

// Settings converts the population section into display settings.
func (c *Config) Settings() display.Settings {
	return display.Settings{
		MaxCount:       c.Population.Max,
		InitCount:      c.Population.Initial,
		InjectCount:    c.Population.InjectCount,
		InjectInterval: c.Population.InjectInterval,
		MinVelocity:    c.EffectiveMinVelocity(),
		MaxVelocity:    c.EffectiveMaxVelocity(),
		TailLength:     c.Tail,
		ShowCount:      c.ShowCount,
	}
}
