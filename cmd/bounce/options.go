package main

import (
	"fmt"
	"log"
	"os"

	"github.com/san-kum/bounce/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// resolveConfig layers the effective configuration: defaults, then a preset,
// then a config file, then any flag set explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	flags := cmd.Flags()

	if preset != "" {
		p := config.GetPreset(preset, cfg)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if fit && !flags.Changed("width") && !flags.Changed("height") {
		cols, rows, err := terminalSize(os.Stdout)
		if err != nil {
			return nil, fmt.Errorf("fit: %w", err)
		}
		cfg.Width, cfg.Height = fitGrid(cols, rows)
	}

	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("max_vel") {
		cfg.MaxVelocity = maxVel
	}
	if flags.Changed("min_vel") {
		cfg.MinVelocity = minVel
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("palette") {
		cfg.Palette = paletteName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("tail") {
		cfg.Tail = tail
	}
	if flags.Changed("count") {
		cfg.ShowCount = showCount
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Printf("config: %dx%d, velocity [%d, %d], tail %d, palette %s, interval %s",
		cfg.Width, cfg.Height, cfg.EffectiveMinVelocity(), cfg.EffectiveMaxVelocity(), cfg.Tail, cfg.Palette, cfg.Interval)
	return cfg, nil
}

func terminalSize(f *os.File) (cols, rows int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%s is not a terminal", f.Name())
	}
	return term.GetSize(fd)
}

// fitGrid leaves one line for the FPS counter and one so the final newline
// does not scroll the frame.
func fitGrid(cols, rows int) (w, h int) {
	w, h = cols, rows-2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
