package display

import (
	"fmt"

	"github.com/san-kum/bounce/internal/trajectory"
)

const (
	DefaultMaxCount       = 500
	DefaultInitCount      = 300
	DefaultInjectCount    = 10
	DefaultInjectInterval = 0.5
	DefaultMinVelocity    = 8
	DefaultMaxVelocity    = 24
	DefaultTailLength     = 1
)

// Settings controls population size and launch velocities.
type Settings struct {
	MaxCount    int
	InitCount   int
	InjectCount int
	// InjectInterval is in seconds.
	InjectInterval float64
	MinVelocity    int
	MaxVelocity    int
	// TailLength is how many distinct recent cells each block keeps lit.
	TailLength int
	// ShowCount prints the population under the FPS counter.
	ShowCount bool
}

func DefaultSettings() Settings {
	return Settings{
		MaxCount:       DefaultMaxCount,
		InitCount:      DefaultInitCount,
		InjectCount:    DefaultInjectCount,
		InjectInterval: DefaultInjectInterval,
		MinVelocity:    DefaultMinVelocity,
		MaxVelocity:    DefaultMaxVelocity,
		TailLength:     DefaultTailLength,
	}
}

func (s Settings) Validate() error {
	if s.MinVelocity == s.MaxVelocity {
		return fmt.Errorf("velocity range [%d, %d]: %w", s.MinVelocity, s.MaxVelocity, trajectory.ErrDegenerateRange)
	}
	if s.MinVelocity > s.MaxVelocity {
		return fmt.Errorf("%w: min velocity %d above max %d", ErrInvalidSettings, s.MinVelocity, s.MaxVelocity)
	}
	if s.MaxCount < 0 || s.InitCount < 0 || s.InjectCount < 0 {
		return fmt.Errorf("%w: counts must not be negative (max %d, init %d, inject %d)",
			ErrInvalidSettings, s.MaxCount, s.InitCount, s.InjectCount)
	}
	if s.TailLength < 1 {
		return fmt.Errorf("%w: tail length must be at least 1, got %d", ErrInvalidSettings, s.TailLength)
	}
	if s.InjectInterval <= 0 {
		return fmt.Errorf("%w: inject interval must be positive, got %f", ErrInvalidSettings, s.InjectInterval)
	}
	return nil
}
