package gauge

import "github.com/charmbracelet/lipgloss"

var (
	colorWhite = lipgloss.Color("#ECF0F1")
	colorDim   = lipgloss.Color("#7F8C8D")
	colorRed   = lipgloss.Color("#E74C3C")
	colorBg    = lipgloss.Color("#1E1E2E")

	titleStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)
