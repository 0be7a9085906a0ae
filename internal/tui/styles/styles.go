package styles

import "github.com/charmbracelet/lipgloss"

// ListStyle frames the application list.
var ListStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7B61FF"))

// Marker is drawn in front of the row that Enter launches.
const Marker = "›"
