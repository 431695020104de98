package main

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status lines.
var (
	destructive = lipgloss.Color("#e53935")
	success     = lipgloss.Color("#8BC34A")
	warning     = lipgloss.Color("#FFC107")
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(success).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	errorStyle = lipgloss.NewStyle().Foreground(destructive).Bold(true)
)

func okLabel(s string) string    { return okStyle.Render(s) }
func warnLabel(s string) string  { return warnStyle.Render(s) }
func errorLabel(s string) string { return errorStyle.Render(s) }
