// Package trajectory models bouncing blocks in closed form.
//
// A [Trajectory] never integrates. Every query evaluates the kinematic
// formulas against absolute time, so the animation is identical at any frame
// rate and a late frame never accumulates error:
//
//	x(t) = vx * (t - start)
//	y(t) = vy * s + g * s^2 / 2,  s = 2 * (t - bounceStart)
//
// When y would drop to zero or below, the bounce restarts. See
// [Trajectory.SampleY].
//
// The package also holds the launch velocity helpers [Skew] and
// [DefaultMaxVelocity].
package trajectory
