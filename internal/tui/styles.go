package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("12")
	ColorAccent  = lipgloss.Color("10")
	ColorMuted   = lipgloss.Color("8")
	ColorDanger  = lipgloss.Color("9")

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	FocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	ResultsPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
