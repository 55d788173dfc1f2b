package viz

import "github.com/charmbracelet/lipgloss"

var (
	statusBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("240"))

	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	keyHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	chartStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

func field(label, value string) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(value)
}
