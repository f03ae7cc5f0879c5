package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorText    = "#cdd6f4"
	colorSubtext = "#a6adc8"
	colorBlue    = "#89b4fa"
	colorGreen   = "#a6e3a1"
	colorRed     = "#f38ba8"
	colorYellow  = "#f9e2af"
	colorSurface = "#45475a"
)

var (
	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBlue)).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorBlue)).
			Bold(true)

	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSubtext))
	errorLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed)).Bold(true)

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlue))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorText))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)).
			Background(lipgloss.Color(colorSurface)).
			Padding(0, 2)
	focusedButtonStyle = buttonStyle.
				Background(lipgloss.Color(colorBlue)).
				Bold(true)
	disabledButtonStyle = buttonStyle.
				Foreground(lipgloss.Color(colorSubtext)).
				Faint(true)

	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen)).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorYellow)).Italic(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSubtext)).Faint(true)
)
