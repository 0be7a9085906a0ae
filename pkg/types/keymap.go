package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dedicated keys of the launcher. Printable keys are not
// bound here; they always extend the query.
type KeyMap struct {
	Confirm   key.Binding // Launch the first visible entry
	Cancel    key.Binding // Exit without launching
	Backspace key.Binding // Delete the last query character
}

// DefaultKeyMap returns Enter to confirm, Esc or Ctrl+C to cancel and
// Backspace to delete.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Backspace, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
