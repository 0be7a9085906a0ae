package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the launcher's terminal styles
var Theme = struct {
	App    lipgloss.Style
	Title  lipgloss.Style
	Active lipgloss.Style // Row launched by Enter
	Row    lipgloss.Style
	Muted  lipgloss.Style // Empty list and overflow notes
	Status lipgloss.Style
}{
	App: lipgloss.NewStyle().
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")),
	Active: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true),
	Row: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#DDDDDD")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
}
