package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todo/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan
)

// headerStyle styles column titles.
func headerStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Bold(true).Foreground(ColorPrimary)
}

// ruleStyle styles the dashed separator.
func ruleStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(ColorSecondary)
}

// textStyle styles ordinary cells.
func textStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(ColorText)
}

// statusStyle picks a color per status. Unknown values fall back to text.
func statusStyle(r *lipgloss.Renderer, status models.TaskStatus) lipgloss.Style {
	switch status {
	case models.StatusComplete:
		return r.NewStyle().Foreground(ColorSuccess)
	case models.StatusInProgress:
		return r.NewStyle().Foreground(ColorCyan).Bold(true)
	case models.StatusIncomplete:
		return r.NewStyle().Foreground(ColorWarning)
	default:
		return textStyle(r)
	}
}
