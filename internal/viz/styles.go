package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Bold(true)

	Header = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")).
		Bold(true)

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255"))

	Good = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	Bad = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))
)
