package display_test

import (
	"math/rand/v2"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bounce/internal/board"
	"github.com/san-kum/bounce/internal/clock"
	"github.com/san-kum/bounce/internal/display"
	"github.com/san-kum/bounce/internal/palette"
	"github.com/san-kum/bounce/internal/trajectory"
)

var _ = Describe("Display", func() {
	var (
		clk *clock.Manual
		pal palette.Palette
		d   *display.Display
	)

	newDisplay := func(w, h int) *display.Display {
		disp, err := display.New(w, h,
			display.WithClock(clk),
			display.WithRand(rand.New(rand.NewPCG(7, 11))),
			display.WithPalette(pal),
		)
		Expect(err).NotTo(HaveOccurred())
		return disp
	}

	countTags := func(b *board.Board, tag string) int {
		n := 0
		for row := 0; row < b.Height(); row++ {
			for _, cell := range b.Row(row) {
				if cell == tag {
					n++
				}
			}
		}
		return n
	}

	BeforeEach(func() {
		clk = clock.NewManual(100)
		var err error
		pal, err = palette.New("hash", "#")
		Expect(err).NotTo(HaveOccurred())
		d = newDisplay(10, 5)
	})

	Describe("New", func() {
		It("rejects non-positive dimensions", func() {
			_, err := display.New(0, 5)
			Expect(err).To(MatchError(board.ErrInvalidDimension))
			_, err = display.New(5, -1)
			Expect(err).To(MatchError(board.ErrInvalidDimension))
		})

		It("starts with default settings and no population", func() {
			Expect(d.Settings).To(Equal(display.DefaultSettings()))
			Expect(d.Count()).To(BeZero())
			Expect(d.Seeded()).To(BeFalse())
		})

		It("rejects an empty palette", func() {
			_, err := display.New(3, 3, display.WithPalette(palette.Palette{}))
			Expect(err).To(MatchError(palette.ErrEmptyPalette))
		})
	})

	Describe("Seed", func() {
		It("is required before drawing", func() {
			_, err := d.NextFrame(clk.Now())
			Expect(err).To(MatchError(display.ErrNotSeeded))
			Expect(d.Step(clk.Now())).To(MatchError(display.ErrNotSeeded))
		})

		It("creates the initial population", func() {
			Expect(d.Seed()).To(Succeed())
			Expect(d.Count()).To(Equal(display.DefaultInitCount))
			Expect(d.Cap()).To(Equal(display.DefaultMaxCount))
		})

		It("can only run once", func() {
			Expect(d.Seed()).To(Succeed())
			Expect(d.Seed()).To(MatchError(display.ErrAlreadySeeded))
		})

		It("fails fast on a degenerate velocity range", func() {
			d.Settings.MinVelocity = 12
			d.Settings.MaxVelocity = 12
			Expect(d.Seed()).To(MatchError(trajectory.ErrDegenerateRange))
			Expect(d.Seeded()).To(BeFalse())
		})

		It("rejects invalid counts and intervals", func() {
			d.Settings.InjectInterval = 0
			Expect(d.Seed()).To(MatchError(display.ErrInvalidSettings))

			d.Settings = display.DefaultSettings()
			d.Settings.InitCount = -1
			Expect(d.Seed()).To(MatchError(display.ErrInvalidSettings))

			d.Settings = display.DefaultSettings()
			d.Settings.TailLength = 0
			Expect(d.Seed()).To(MatchError(display.ErrInvalidSettings))
		})

		It("uses velocity bounds overridden before seeding", func() {
			d.Settings.MinVelocity = 3
			d.Settings.MaxVelocity = trajectory.DefaultMaxVelocity(5)
			Expect(d.Seed()).To(Succeed())

			now := clk.Now()
			for _, tr := range d.Trajectories() {
				speed := tr.X(now+1) - tr.X(now)
				Expect(speed).To(BeNumerically(">=", 3))
				Expect(speed).To(BeNumerically("<=", trajectory.DefaultMaxVelocity(5)))
				Expect(tr.Tag()).To(Equal("#"))
			}
		})

		It("ignores settings changed after seeding", func() {
			d.Settings.InitCount = 2
			d.Settings.MaxCount = 2
			Expect(d.Seed()).To(Succeed())

			d.Settings.MaxCount = 100
			clk.Advance(1)
			Expect(d.Step(clk.Now())).To(Succeed())
			Expect(d.Count()).To(Equal(2))
		})

		It("never seeds beyond the cap", func() {
			d.Settings.InitCount = 20
			d.Settings.MaxCount = 8
			Expect(d.Seed()).To(Succeed())
			Expect(d.Count()).To(Equal(8))
		})
	})

	Describe("injection", func() {
		BeforeEach(func() {
			d.Settings.InitCount = 5
			d.Settings.MaxCount = 5
			d.Settings.InjectCount = 10
		})

		It("is skipped when the cap is reached", func() {
			Expect(d.Seed()).To(Succeed())
			clk.Advance(1)
			Expect(d.Step(clk.Now())).To(Succeed())
			Expect(d.Count()).To(Equal(5))
		})

		It("partially fills the remaining headroom", func() {
			d.Settings.MaxCount = 12
			Expect(d.Seed()).To(Succeed())
			clk.Advance(1)
			Expect(d.Step(clk.Now())).To(Succeed())
			Expect(d.Count()).To(Equal(12))
		})

		It("waits for strictly more than the interval", func() {
			d.Settings.MaxCount = 100
			Expect(d.Seed()).To(Succeed())

			clk.Advance(display.DefaultInjectInterval)
			Expect(d.Step(clk.Now())).To(Succeed())
			Expect(d.Count()).To(Equal(5))

			clk.Advance(0.01)
			Expect(d.Step(clk.Now())).To(Succeed())
			Expect(d.Count()).To(Equal(15))
			Expect(d.LastInject()).To(Equal(clk.Now()))

			clk.Advance(0.1)
			Expect(d.Step(clk.Now())).To(Succeed())
			Expect(d.Count()).To(Equal(15))
		})

		It("grows monotonically up to the cap", func() {
			d.Settings.MaxCount = 42
			Expect(d.Seed()).To(Succeed())

			prev := d.Count()
			for i := 0; i < 200; i++ {
				clk.Advance(0.05)
				_, err := d.NextFrame(clk.Now())
				Expect(err).NotTo(HaveOccurred())
				Expect(d.Count()).To(BeNumerically(">=", prev))
				Expect(d.Count()).To(BeNumerically("<=", 42))
				prev = d.Count()
			}
			Expect(d.Count()).To(Equal(42))
		})
	})

	Describe("NextFrame", func() {
		It("draws every live block onto a cleared board", func() {
			d.Settings.InitCount = 3
			Expect(d.Seed()).To(Succeed())

			clk.Advance(0.2)
			frame, err := d.NextFrame(clk.Now())
			Expect(err).NotTo(HaveOccurred())

			drawn := countTags(d.Board(), "#")
			Expect(drawn).To(BeNumerically(">=", 1))
			Expect(drawn).To(BeNumerically("<=", 3))
			Expect(countTags(d.Board(), board.Placeholder)).To(BeZero())
			Expect(strings.Count(string(frame), "#")).To(Equal(drawn))
			Expect(string(frame)).To(ContainSubstring("FPS: "))
		})

		It("repaints in place after the first frame", func() {
			Expect(d.Seed()).To(Succeed())

			first, err := d.NextFrame(clk.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(first)).NotTo(ContainSubstring(board.Rewind))

			clk.Advance(0.01)
			second, err := d.NextFrame(clk.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(second)).To(HavePrefix(strings.Repeat(board.Rewind, 6)))
			Expect(strings.Count(string(second), board.RowEnd)).To(Equal(6))
		})

		It("keeps a trail of TailLength cells per block", func() {
			d = newDisplay(100, 5)
			d.Settings.InitCount = 1
			d.Settings.TailLength = 4
			Expect(d.Seed()).To(Succeed())
			Expect(d.Trajectories()[0].TailLength()).To(Equal(4))

			for i := 0; i < 6; i++ {
				clk.Advance(0.2)
				_, err := d.NextFrame(clk.Now())
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(countTags(d.Board(), "#")).To(Equal(4))
		})

		It("prints the population under the FPS line when asked", func() {
			d.Settings.InitCount = 3
			d.Settings.ShowCount = true
			Expect(d.Seed()).To(Succeed())

			frame, err := d.NextFrame(clk.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(frame)).To(HaveSuffix("Blocks: 3/500" + board.RowEnd))

			clk.Advance(0.01)
			frame, err = d.NextFrame(clk.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(frame)).To(HavePrefix(strings.Repeat(board.Rewind, 7)))
		})

		It("leaves the board blank without a population", func() {
			d.Settings.InitCount = 0
			Expect(d.Seed()).To(Succeed())

			_, err := d.NextFrame(clk.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(countTags(d.Board(), "#")).To(BeZero())

			bottom := d.Board().Row(d.Board().Height() - 1)
			Expect(bottom).To(HaveEach(board.Blank))
		})
	})
})
