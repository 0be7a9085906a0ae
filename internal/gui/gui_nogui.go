//go:build nogui

package gui

import "applauncher/internal/errors"

// Create is a stub implementation for builds with GUI disabled
func (f *Factory) Create() (Interface, error) {
	return nil, errors.New("GUI not available in this build, use the tui command")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
