package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bounce/internal/display"
	"github.com/san-kum/bounce/internal/metrics"
)

const historyCapacity = 120

type TickMsg time.Time

// Model shows a Display inside a Bubble Tea program. Bubble Tea owns
// repainting here, so the board body is rendered without rewind sequences.
type Model struct {
	disp      *display.Display
	interval  time.Duration
	stats     *metrics.FrameStats
	paused    bool
	showChart bool
	err       error
}

func NewModel(disp *display.Display, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return Model{
		disp:     disp,
		interval: interval,
		stats:    metrics.NewFrameStats(historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "g":
			m.showChart = !m.showChart
		}
		return m, nil

	case TickMsg:
		if m.paused {
			return m, m.tick()
		}
		if err := m.disp.Step(m.disp.Clock().Now()); err != nil {
			m.err = err
			return m, tea.Quit
		}
		fps := m.disp.Board().Tick()
		m.stats.Observe(fps, m.disp.Count())
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(m.disp.Board().Body())
	s.WriteString("\n")

	status := []string{
		field("FPS", fmt.Sprintf("%d", m.disp.Board().FPS())),
		field("blocks", fmt.Sprintf("%d/%d", m.disp.Count(), m.disp.Cap())),
		field("palette", m.disp.Palette().Name()),
	}
	if m.paused {
		status = append(status, pausedStyle.Render("PAUSED"))
	}
	if m.err != nil {
		status = append(status, errorStyle.Render(m.err.Error()))
	}
	s.WriteString(statusBar.Render(strings.Join(status, "   ")))
	s.WriteString("\n")

	if m.showChart {
		if chart := metrics.Chart(m.stats.PopulationHistory(), 40, 4, "population"); chart != "" {
			s.WriteString(chartStyle.Render(chart) + "\n")
		}
	}
	s.WriteString(keyHint.Render("space: pause  g: chart  q: quit"))
	return s.String()
}

func (m Model) Err() error      { return m.err }
func (m Model) Paused() bool    { return m.paused }
func (m Model) ShowChart() bool { return m.showChart }

// Run starts the interactive view on the alternate screen and blocks until
// the user quits.
func Run(disp *display.Display, interval time.Duration) error {
	p := tea.NewProgram(NewModel(disp, interval), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
