package metrics

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const DefaultHistory = 600

var (
	summaryHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	summaryLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	summaryValue  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// FrameStats records the displayed FPS and population after each frame,
// keeping the most recent samples.
type FrameStats struct {
	name       string
	capacity   int
	frames     int
	peakFPS    int
	fpsSum     int
	fpsSamples int
	fps        []float64
	population []float64
}

func NewFrameStats(capacity int) *FrameStats {
	if capacity <= 0 {
		capacity = DefaultHistory
	}
	return &FrameStats{
		name:       "frames",
		capacity:   capacity,
		fps:        make([]float64, 0, capacity),
		population: make([]float64, 0, capacity),
	}
}

func (s *FrameStats) Name() string { return s.name }

func (s *FrameStats) Observe(fps, population int) {
	s.frames++
	if fps > 0 {
		s.fpsSum += fps
		s.fpsSamples++
	}
	if fps > s.peakFPS {
		s.peakFPS = fps
	}

	s.fps = appendCapped(s.fps, float64(fps), s.capacity)
	s.population = appendCapped(s.population, float64(population), s.capacity)
}

// Value is the mean of the non-zero FPS readings. The board reports 0 until
// its first one-second window closes, so those frames are not counted.
func (s *FrameStats) Value() float64 {
	if s.fpsSamples == 0 {
		return 0
	}
	return float64(s.fpsSum) / float64(s.fpsSamples)
}

func (s *FrameStats) Reset() {
	s.frames = 0
	s.peakFPS = 0
	s.fpsSum = 0
	s.fpsSamples = 0
	s.fps = s.fps[:0]
	s.population = s.population[:0]
}

func (s *FrameStats) Frames() int  { return s.frames }
func (s *FrameStats) PeakFPS() int { return s.peakFPS }

func (s *FrameStats) FPSHistory() []float64        { return clone(s.fps) }
func (s *FrameStats) PopulationHistory() []float64 { return clone(s.population) }

// Chart plots a history with asciigraph, or returns "" when there are fewer
// than two samples.
func Chart(data []float64, width, height int, caption string) string {
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Summary renders totals and charts for printing after a run.
func (s *FrameStats) Summary() string {
	var b strings.Builder
	b.WriteString(summaryHeader.Render("RUN SUMMARY") + "\n")
	b.WriteString(summaryLabel.Render("Frames") + summaryValue.Render(fmt.Sprintf("%d", s.frames)) + "\n")
	b.WriteString(summaryLabel.Render("Mean FPS") + summaryValue.Render(fmt.Sprintf("%.1f", s.Value())) + "\n")
	b.WriteString(summaryLabel.Render("Peak FPS") + summaryValue.Render(fmt.Sprintf("%d", s.peakFPS)) + "\n")
	if n := len(s.population); n > 0 {
		b.WriteString(summaryLabel.Render("Population") + summaryValue.Render(fmt.Sprintf("%.0f", s.population[n-1])) + "\n")
	}

	if chart := Chart(s.fps, 60, 8, "fps"); chart != "" {
		b.WriteString("\n" + chart + "\n")
	}
	if chart := Chart(s.population, 60, 6, "population"); chart != "" {
		b.WriteString("\n" + chart + "\n")
	}
	return b.String()
}

func appendCapped(xs []float64, v float64, capacity int) []float64 {
	if len(xs) == capacity {
		copy(xs, xs[1:])
		xs = xs[:capacity-1]
	}
	return append(xs, v)
}

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}
