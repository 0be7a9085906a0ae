//go:build !nogui

package gui

import "fyne.io/fyne/v2/app"

// AppID identifies the application to the toolkit.
const AppID = "io.github.applauncher"

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	return NewApp(app.NewWithID(AppID), f.config, f.shell), nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
