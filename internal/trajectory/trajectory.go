package trajectory

import (
	"math"
	"math/rand/v2"
)

const (
	// Gravity is the nominal downward acceleration before per-object jitter.
	Gravity = -9.8

	// GravityJitter bounds the uniform perturbation applied to Gravity.
	GravityJitter = 1.0

	// BounceSpeedup compresses the bounce period. Tuning only.
	BounceSpeedup = 2.0
)

// Trajectory is a block that moves right at a constant speed and bounces on
// y=0 following a projectile parabola.
//
// X is a pure function of age. Y restarts its parabola every time it touches
// the ground, so SampleY mutates the bounce start time.
type Trajectory struct {
	start       float64
	bounceStart float64

	xVel float64
	yVel float64

	gravity float64
	tag     string

	tail  int
	trail []Point
}

// Point is a floored position in grid coordinates, y counting up from the
// ground.
type Point struct {
	X, Y int
}

// New creates a trajectory at time now. It draws twice from rng: once for the
// gravity perturbation and once for a phase offset that pushes the start time
// back by up to a second so objects created together do not move in lockstep.
func New(now, xVel, yVel float64, tag string, rng *rand.Rand) *Trajectory {
	delta := (rng.Float64()*2 - 1) * GravityJitter
	offset := rng.Float64()

	return &Trajectory{
		start:       now - offset,
		bounceStart: now,
		xVel:        xVel,
		yVel:        yVel,
		gravity:     Gravity + delta,
		tag:         tag,
		tail:        1,
	}
}

func (t *Trajectory) Tag() string      { return t.tag }
func (t *Trajectory) Gravity() float64 { return t.gravity }

// Start is the creation time minus the random phase offset; X is measured
// from it.
func (t *Trajectory) Start() float64 { return t.start }

// TailLength is the number of distinct recent positions kept by Advance.
func (t *Trajectory) TailLength() int { return t.tail }

// SetTailLength sets how many distinct recent positions Advance keeps.
// Values below 1 are treated as 1.
func (t *Trajectory) SetTailLength(n int) {
	if n < 1 {
		n = 1
	}
	t.tail = n
	t.trim()
}

// X returns the horizontal distance travelled since creation.
func (t *Trajectory) X(now float64) float64 {
	return t.xVel * (now - t.start)
}

// SampleY returns the height above ground at now and advances the bounce
// cycle: when the parabola has reached or passed the ground, the cycle
// restarts at now and 0 is returned. Repeated samples at the same instant
// return the same value.
func (t *Trajectory) SampleY(now float64) float64 {
	dt := (now - t.bounceStart) * BounceSpeedup
	y := t.yVel*dt + 0.5*t.gravity*dt*dt

	if y <= 0 {
		t.bounceStart = now
		return 0
	}
	return y
}

// Position samples both axes and floors them to cell coordinates.
// It has the same side effect as SampleY.
func (t *Trajectory) Position(now float64) (x, y int) {
	y = int(math.Floor(t.SampleY(now)))
	x = int(math.Floor(t.X(now)))
	return x, y
}

// OlderThan reports whether the trajectory has existed for at least age seconds.
func (t *Trajectory) OlderThan(now, age float64) bool {
	return now-t.start >= age
}

// Advance samples the position at now, records it in the trail unless the
// trail already holds it, and returns the trail oldest first. With a tail
// length of 1 the trail is just the current position.
//
// The returned slice is owned by the trajectory and valid until the next call.
func (t *Trajectory) Advance(now float64) []Point {
	x, y := t.Position(now)
	p := Point{X: x, Y: y}
	if !t.holds(p) {
		t.trail = append(t.trail, p)
		t.trim()
	}
	return t.trail
}

func (t *Trajectory) holds(p Point) bool {
	for _, q := range t.trail {
		if q == p {
			return true
		}
	}
	return false
}

// trim drops the oldest points past the tail length, reusing the backing array.
func (t *Trajectory) trim() {
	if extra := len(t.trail) - max(t.tail, 1); extra > 0 {
		n := copy(t.trail, t.trail[extra:])
		t.trail = t.trail[:n]
	}
}
