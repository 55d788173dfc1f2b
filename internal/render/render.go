// Package render drives a Display and writes its frames to a terminal.
package render

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/san-kum/bounce/internal/display"
	"github.com/san-kum/bounce/internal/metrics"
)

const (
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"

	DefaultInterval = 10 * time.Millisecond
)

type Options struct {
	// Interval is the sleep between frames.
	Interval time.Duration
	// Frames stops the loop after this many frames; 0 runs until canceled.
	Frames int
	// HideCursor wraps the run in cursor hide/show sequences.
	HideCursor bool
	// Stats, when set, observes every frame.
	Stats *metrics.FrameStats
}

func DefaultOptions() Options {
	return Options{
		Interval:   DefaultInterval,
		HideCursor: true,
	}
}

type Renderer struct {
	disp *display.Display
	out  io.Writer
	opts Options
}

func New(disp *display.Display, out io.Writer, opts Options) *Renderer {
	return &Renderer{disp: disp, out: out, opts: opts}
}

// Run writes one frame per iteration until the frame limit is reached or ctx
// is canceled. Cancellation is a normal stop and returns nil. The cursor is
// shown again on every exit path.
func (r *Renderer) Run(ctx context.Context) (err error) {
	if r.opts.HideCursor {
		if _, err := io.WriteString(r.out, HideCursor); err != nil {
			return fmt.Errorf("hide cursor: %w", err)
		}
		defer func() {
			if _, werr := io.WriteString(r.out, ShowCursor); werr != nil && err == nil {
				err = fmt.Errorf("show cursor: %w", werr)
			}
		}()
	}

	var timer *time.Timer
	if r.opts.Interval > 0 {
		timer = time.NewTimer(r.opts.Interval)
		defer timer.Stop()
	}

	clk := r.disp.Clock()
	for i := 0; r.opts.Frames == 0 || i < r.opts.Frames; i++ {
		select {
		case <-ctx.Done():
			log.Printf("render: stopped after %d frames: %v", i, ctx.Err())
			return nil
		default:
		}

		frame, err := r.disp.NextFrame(clk.Now())
		if err != nil {
			return err
		}
		if _, err := r.out.Write(frame); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
		if r.opts.Stats != nil {
			r.opts.Stats.Observe(r.disp.Board().FPS(), r.disp.Count())
		}

		if timer == nil {
			continue
		}
		timer.Reset(r.opts.Interval)
		select {
		case <-ctx.Done():
			log.Printf("render: stopped after %d frames: %v", i+1, ctx.Err())
			return nil
		case <-timer.C:
		}
	}
	return nil
}
