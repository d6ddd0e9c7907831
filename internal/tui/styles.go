package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	tabStyle       = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1).Underline(true)

	nameStyle  = lipgloss.NewStyle().Width(28)
	valueStyle = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)
