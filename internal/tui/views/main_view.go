package views

import (
	"strings"

	"applauncher/internal/tui/common"
	"applauncher/internal/tui/components"
	"applauncher/internal/tui/styles"
)

// chrome is the number of lines used by everything except the list rows.
const chrome = 10

func RenderMainView(m common.ModelReader) string {
	var sb strings.Builder

	sb.WriteString(styles.Theme.Title.Render(m.Title()))
	sb.WriteString("\n")
	sb.WriteString(m.InputView())
	sb.WriteString("\n")

	list := components.NewAppList()
	list.SetEntries(m.Visible())
	if m.Height() > 0 {
		rows := m.Height() - chrome
		if rows < 1 {
			rows = 1
		}
		list.SetHeight(rows)
	}
	sb.WriteString(styles.ListStyle.Render(list.View()))
	sb.WriteString("\n")

	status := components.NewStatusBar()
	status.SetCounts(len(m.Visible()), m.Total())
	sb.WriteString(status.View())
	sb.WriteString("\n")
	sb.WriteString(m.HelpView())

	return styles.Theme.App.Render(sb.String())
}
