package components

import (
	"fmt"

	"applauncher/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows how many applications match the query.
type StatusBar struct {
	shown int
	total int
	style lipgloss.Style
}

func NewStatusBar() *StatusBar {
	return &StatusBar{style: styles.Theme.Status}
}

func (s *StatusBar) SetCounts(shown, total int) {
	s.shown = shown
	s.total = total
}

func (s *StatusBar) View() string {
	return s.style.Render(fmt.Sprintf("%d of %d applications", s.shown, s.total))
}
