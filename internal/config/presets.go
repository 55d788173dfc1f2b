package config

import (
	"sort"
	"time"

	"github.com/san-kum/bounce/internal/display"
)

// Presets are named variations on DefaultConfig. Zero-valued dimensions,
// tail, frames and seed mean "keep the current value".
var Presets = map[string]*Config{
	"classic": {
		MinVelocity: display.DefaultMinVelocity,
		Population: PopulationConfig{
			Max:            display.DefaultMaxCount,
			Initial:        display.DefaultInitCount,
			InjectCount:    display.DefaultInjectCount,
			InjectInterval: display.DefaultInjectInterval,
		},
		Interval: DefaultInterval,
		Palette:  DefaultPalette,
	},
	"calm": {
		MinVelocity: 4,
		Population:  PopulationConfig{Max: 120, Initial: 60, InjectCount: 2, InjectInterval: 1.5},
		Interval:    20 * time.Millisecond,
		Palette:     "ocean",
	},
	"storm": {
		MinVelocity: 10,
		Population:  PopulationConfig{Max: 2000, Initial: 800, InjectCount: 40, InjectInterval: 0.25},
		Interval:    DefaultInterval,
		Palette:     "sunset",
	},
	"trickle": {
		MinVelocity: 8,
		Population:  PopulationConfig{Max: 500, Initial: 1, InjectCount: 1, InjectInterval: 0.1},
		Interval:    DefaultInterval,
		Palette:     "retro",
	},
	"ghost": {
		MinVelocity: 6,
		Population:  PopulationConfig{Max: 300, Initial: 150, InjectCount: 5, InjectInterval: 0.5},
		Interval:    15 * time.Millisecond,
		Palette:     "mono",
		Tail:        3,
	},
}

// GetPreset returns a copy of the named preset applied over cfg's dimensions,
// or nil when the preset does not exist.
func GetPreset(name string, base *Config) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *p
	if out.Width == 0 {
		out.Width = base.Width
	}
	if out.Height == 0 {
		out.Height = base.Height
	}
	if out.MaxVelocity == 0 {
		out.MaxVelocity = base.MaxVelocity
	}
	if out.Frames == 0 {
		out.Frames = base.Frames
	}
	if out.Seed == 0 {
		out.Seed = base.Seed
	}
	if out.Tail == 0 {
		out.Tail = base.Tail
	}
	out.ShowCount = out.ShowCount || base.ShowCount
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
