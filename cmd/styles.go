package cmd

import "github.com/charmbracelet/lipgloss"

// Common styles used across commands
var (
	// Status styles
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))           // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	// Binding styles
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true) // Blue
	remapStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C"))
	scopeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6"))
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))

	// Text styles
	faintStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
)
