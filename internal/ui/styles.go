// Package ui provides terminal output components: a static table for
// list output and an interactive browser for cache entries.
package ui

import "charm.land/lipgloss/v2"

var (
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
)
