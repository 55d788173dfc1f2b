package display

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"

	"github.com/san-kum/bounce/internal/board"
	"github.com/san-kum/bounce/internal/clock"
	"github.com/san-kum/bounce/internal/palette"
	"github.com/san-kum/bounce/internal/trajectory"
)

var (
	ErrNotSeeded       = errors.New("display: Seed must be called before drawing frames")
	ErrAlreadySeeded   = errors.New("display: already seeded")
	ErrInvalidSettings = errors.New("display: invalid settings")
)

// Display owns the board and the growing population of trajectories, and
// drives one frame at a time.
//
// Construction is two-phase: New returns an unpopulated Display whose
// Settings may still be changed (typically MaxVelocity, derived from the
// board height), and Seed must be called once before Step or NextFrame.
type Display struct {
	Settings Settings

	board   *board.Board
	clock   clock.Clock
	rng     *rand.Rand
	palette palette.Palette

	// active is the copy of Settings taken by Seed; later edits to Settings
	// have no effect.
	active       Settings
	trajectories []*trajectory.Trajectory
	lastInject   float64
	seeded       bool
}

type Option func(*Display)

func WithClock(c clock.Clock) Option {
	return func(d *Display) { d.clock = c }
}

func WithRand(r *rand.Rand) Option {
	return func(d *Display) { d.rng = r }
}

func WithPalette(p palette.Palette) Option {
	return func(d *Display) { d.palette = p }
}

func New(width, height int, opts ...Option) (*Display, error) {
	d := &Display{
		Settings: DefaultSettings(),
		palette:  palette.Default,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.clock == nil {
		d.clock = clock.NewSystem()
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if d.palette.Len() == 0 {
		return nil, palette.ErrEmptyPalette
	}

	b, err := board.NewWithClock(width, height, d.clock)
	if err != nil {
		return nil, err
	}
	d.board = b
	d.lastInject = d.clock.Now()
	return d, nil
}

// Seed validates the settings and creates the initial population.
func (d *Display) Seed() error {
	if d.seeded {
		return ErrAlreadySeeded
	}
	if err := d.Settings.Validate(); err != nil {
		return err
	}

	d.active = d.Settings
	now := d.clock.Now()
	d.trajectories = make([]*trajectory.Trajectory, 0, d.active.MaxCount)
	for i := 0; i < d.active.InitCount && len(d.trajectories) < d.active.MaxCount; i++ {
		d.trajectories = append(d.trajectories, d.spawn(now))
	}
	d.seeded = true

	log.Printf("display: seeded %d trajectories on %dx%d board, velocity [%d, %d]",
		len(d.trajectories), d.board.Width(), d.board.Height(), d.active.MinVelocity, d.active.MaxVelocity)
	return nil
}

// spawn builds one trajectory. The active settings were validated by Seed,
// so the skew range is never degenerate here.
func (d *Display) spawn(now float64) *trajectory.Trajectory {
	lo, hi := float64(d.active.MinVelocity), float64(d.active.MaxVelocity)
	xVel := lo + d.rng.Float64()*(hi-lo)
	yVel, _ := trajectory.Skew(lo+d.rng.Float64()*(hi-lo), lo, hi)

	tr := trajectory.New(now, xVel, yVel, d.palette.Pick(d.rng), d.rng)
	tr.SetTailLength(d.active.TailLength)
	return tr
}

// inject adds up to InjectCount trajectories, checking the cap before each
// one so a batch can partially fill the remaining headroom.
func (d *Display) inject(now float64) int {
	added := 0
	for i := 0; i < d.active.InjectCount; i++ {
		if len(d.trajectories) >= d.active.MaxCount {
			break
		}
		d.trajectories = append(d.trajectories, d.spawn(now))
		added++
	}
	return added
}

// Step runs the simulation part of a frame: injection when the interval has
// elapsed, then clearing the board and drawing every trajectory's trail at
// now.
func (d *Display) Step(now float64) error {
	if !d.seeded {
		return ErrNotSeeded
	}

	if now-d.lastInject > d.active.InjectInterval {
		d.lastInject = now
		if n := d.inject(now); n > 0 {
			log.Printf("display: injected %d, population %d/%d", n, len(d.trajectories), d.active.MaxCount)
		}
	}

	d.board.Clear()
	for _, tr := range d.trajectories {
		for _, p := range tr.Advance(now) {
			d.board.Set(p.X, p.Y, tr.Tag())
		}
	}
	if d.active.ShowCount {
		d.board.SetStatus("Blocks: " + strconv.Itoa(len(d.trajectories)) + "/" + strconv.Itoa(d.active.MaxCount))
	}
	return nil
}

// NextFrame steps to now and returns the serialized board. The slice is
// owned by the board and valid until the next call.
func (d *Display) NextFrame(now float64) ([]byte, error) {
	if err := d.Step(now); err != nil {
		return nil, fmt.Errorf("next frame: %w", err)
	}
	return d.board.Frame(), nil
}

func (d *Display) Board() *board.Board      { return d.board }
func (d *Display) Clock() clock.Clock       { return d.clock }
func (d *Display) Palette() palette.Palette { return d.palette }
func (d *Display) Count() int               { return len(d.trajectories) }
func (d *Display) Seeded() bool             { return d.seeded }

// Cap is the population limit fixed by Seed; 0 before Seed.
func (d *Display) Cap() int { return d.active.MaxCount }

// LastInject is the clock time of the last injection check that fired, or
// the creation time if none has.
func (d *Display) LastInject() float64 { return d.lastInject }

func (d *Display) Trajectories() []*trajectory.Trajectory {
	out := make([]*trajectory.Trajectory, len(d.trajectories))
	copy(out, d.trajectories)
	return out
}
