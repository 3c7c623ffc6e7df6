package tui

import "github.com/charmbracelet/lipgloss"

// padColumn pads every line of s to width cells.
func padColumn(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func joinColumns(left, right string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}
