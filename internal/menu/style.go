package menu

import "github.com/charmbracelet/lipgloss"

var (
	borderASCII = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)

	paneStyle       = lipgloss.NewStyle().Border(borderASCII).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	paneActiveStyle = paneStyle.BorderForeground(lipgloss.Color("33"))

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	statusTodoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	statusInProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusCompletedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)
