//go:build !nogui

package gui

import (
	"applauncher/internal/config"
	"applauncher/internal/log"
	"applauncher/internal/shell"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config
	shell   *shell.Shell

	query *QueryEntry
	rows  *fyne.Container
}

// NewApp creates the launcher window for sh. The window is not shown until Run.
func NewApp(fyneApp fyne.App, cfg *config.Config, sh *shell.Shell) *App {
	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		shell:   sh,
	}
	a.window = a.newWindow()
	a.setupMainWindow()
	return a
}

// newWindow prefers a borderless splash window when the driver offers one.
// Fyne cannot raise a window above others, so staying on top is left to the
// window manager.
func (a *App) newWindow() fyne.Window {
	if drv, ok := a.fyneApp.Driver().(desktop.Driver); ok {
		log.Debugf("Using borderless window")
		w := drv.CreateSplashWindow()
		w.SetTitle(a.cfg.Window.Title)
		return w
	}
	return a.fyneApp.NewWindow(a.cfg.Window.Title)
}

func (a *App) setupMainWindow() {
	a.query = NewQueryEntry()
	a.query.OnChar = a.typeChar
	a.query.OnBackspace = a.backspace
	a.query.OnConfirm = a.confirm
	a.query.OnCancel = a.cancel

	a.rows = container.NewVBox()
	a.rebuildRows()

	a.window.SetContent(container.NewBorder(
		a.query,
		nil,
		nil,
		nil,
		container.NewVScroll(a.rows),
	))
	a.window.Resize(fyne.NewSize(a.cfg.Window.Width, a.cfg.Window.Height))
	a.window.SetFixedSize(true)
	a.window.CenterOnScreen()

	// Keys reach the canvas only when the field has lost focus
	a.window.Canvas().SetOnTypedKey(a.canvasTypedKey)
	if dc, ok := a.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(a.canvasKeyDown)
		dc.SetOnKeyUp(a.query.KeyUp)
	}
	a.window.Canvas().Focus(a.query)
}

// canvasKeyDown gives focus back to the field and replays the key there.
func (a *App) canvasKeyDown(ke *fyne.KeyEvent) {
	a.window.Canvas().Focus(a.query)
	a.query.KeyDown(ke)
}

func (a *App) canvasTypedKey(ke *fyne.KeyEvent) {
	a.window.Canvas().Focus(a.query)
	a.query.TypedKey(ke)
}

// Window returns the launcher window.
func (a *App) Window() fyne.Window {
	return a.window
}

// Run shows the window and blocks in the toolkit's event loop.
func (a *App) Run() {
	a.window.Show()
	a.fyneApp.Run()
}

func (a *App) typeChar(r rune) {
	if a.shell.Type(r) {
		a.queryChanged()
	}
}

func (a *App) backspace() {
	if a.shell.Backspace() {
		a.queryChanged()
	}
}

func (a *App) confirm() {
	a.shell.Confirm()
}

func (a *App) cancel() {
	a.shell.Cancel()
}

func (a *App) activate(i int) {
	a.shell.Activate(i)
}

func (a *App) queryChanged() {
	a.query.SetQuery(a.shell.Query())
	a.rebuildRows()
}

// rebuildRows replaces every row with a fresh button for the visible entries.
func (a *App) rebuildRows() {
	visible := a.shell.Visible()
	objects := make([]fyne.CanvasObject, 0, len(visible))
	for i, e := range visible {
		btn := widget.NewButton(e.Name, func() { a.activate(i) })
		btn.Alignment = widget.ButtonAlignLeading
		if i == 0 {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		objects = append(objects, btn)
	}
	a.rows.Objects = objects
	a.rows.Refresh()
}
