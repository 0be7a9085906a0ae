//go:build !nogui

package gui

import (
	"applauncher/internal/shell"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// QueryEntry is the search field. It never edits its own text: key presses
// are handed to the callbacks and the text is set back from the shell.
type QueryEntry struct {
	widget.Entry

	OnChar      func(r rune)
	OnBackspace func()
	OnConfirm   func()
	OnCancel    func()

	shift bool
}

// NewQueryEntry creates a single-line query field.
func NewQueryEntry() *QueryEntry {
	e := &QueryEntry{}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder("Search applications")
	return e
}

// KeyDown translates printable keys through the shift table.
func (e *QueryEntry) KeyDown(key *fyne.KeyEvent) {
	switch key.Name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		e.shift = true
		return
	}
	if r, ok := shell.KeyChar(string(key.Name), e.shift); ok && e.OnChar != nil {
		e.OnChar(r)
	}
}

func (e *QueryEntry) KeyUp(key *fyne.KeyEvent) {
	switch key.Name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		e.shift = false
	}
}

func (e *QueryEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyBackspace:
		if e.OnBackspace != nil {
			e.OnBackspace()
		}
	case fyne.KeyReturn, fyne.KeyEnter:
		if e.OnConfirm != nil {
			e.OnConfirm()
		}
	case fyne.KeyEscape:
		if e.OnCancel != nil {
			e.OnCancel()
		}
	}
}

// TypedRune is ignored; characters come from KeyDown.
func (e *QueryEntry) TypedRune(rune) {}

// TypedShortcut is ignored so paste and cut cannot change the query.
func (e *QueryEntry) TypedShortcut(fyne.Shortcut) {}

// SetQuery shows text with the cursor at its end.
func (e *QueryEntry) SetQuery(text string) {
	e.Entry.SetText(text)
	e.Entry.CursorColumn = len([]rune(text))
	e.Entry.Refresh()
}
