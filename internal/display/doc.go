// Package display manages the population of bouncing blocks and produces
// one frame per call.
//
// # Lifecycle
//
//	d, _ := display.New(159, 37)
//	d.Settings.MaxVelocity = trajectory.DefaultMaxVelocity(37)
//	if err := d.Seed(); err != nil { ... }
//	for {
//		frame, _ := d.NextFrame(d.Clock().Now())
//		os.Stdout.Write(frame)
//	}
//
// The population only grows: every InjectInterval seconds up to InjectCount
// new blocks are added until MaxCount is reached.
//
// # Thread Safety
//
// A Display is NOT thread-safe. It and its board are meant to be driven from
// a single render loop.
package display
