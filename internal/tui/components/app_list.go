package components

import (
	"fmt"
	"strings"

	"applauncher/internal/desktop"
	"applauncher/internal/tui/styles"
)

// AppList renders the visible entries, first row highlighted as the one
// Enter launches. Rows beyond the height limit are summarised.
type AppList struct {
	entries []desktop.Entry
	height  int
}

func NewAppList() *AppList {
	return &AppList{}
}

func (al *AppList) SetEntries(entries []desktop.Entry) {
	al.entries = entries
}

// SetHeight limits the number of rows drawn; zero means unlimited.
func (al *AppList) SetHeight(height int) {
	al.height = height
}

func (al *AppList) View() string {
	if len(al.entries) == 0 {
		return styles.Theme.Muted.Render("No matching applications")
	}

	rows := al.entries
	hidden := 0
	if al.height > 0 && len(rows) > al.height {
		// keep one line for the summary
		keep := al.height - 1
		if keep < 1 {
			keep = 1
		}
		hidden = len(rows) - keep
		rows = rows[:keep]
	}

	var s strings.Builder
	for i, e := range rows {
		if i > 0 {
			s.WriteString("\n")
		}
		if i == 0 {
			s.WriteString(styles.Theme.Active.Render(styles.Marker + " " + e.Name))
			continue
		}
		s.WriteString(styles.Theme.Row.Render("  " + e.Name))
	}
	if hidden > 0 {
		s.WriteString("\n")
		s.WriteString(styles.Theme.Muted.Render(fmt.Sprintf("  … %d more", hidden)))
	}
	return s.String()
}
