package main

import (
	"applauncher/internal/catalog"
	"applauncher/internal/config"
	"applauncher/internal/gui"
	"applauncher/internal/launch"
	"applauncher/internal/shell"
)

// runGUI opens the launcher window. It returns only if the toolkit's event
// loop ends without a launch or cancel, e.g. when the window manager closes
// the window.
func runGUI(cfg *config.Config, cat *catalog.Catalog) error {
	launcher := launch.New(launch.ShellSpawner{Shell: cfg.Launch.Shell})
	sh := shell.New(cat, launcher)

	ui, err := gui.NewFactory(cfg, sh).Create()
	if err != nil {
		return err
	}
	ui.Run()
	return nil
}
