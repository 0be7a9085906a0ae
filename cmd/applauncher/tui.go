package main

import (
	"fmt"
	"os"

	"applauncher/internal/launch"
	"applauncher/internal/shell"
	"applauncher/internal/tui"
	"applauncher/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newTUICmd represents the TUI command
func newTUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal user interface",
		Long:  `Run the launcher inside the terminal instead of opening a window.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(c)
		},
	}
}

// runTUI does not return after a launch or cancel: it exits with the
// launcher's code once Bubble Tea has restored the terminal.
func runTUI(c *cli) error {
	cat := c.buildCatalog()

	code := launch.ExitOK
	launcher := launch.New(
		launch.ShellSpawner{Shell: c.cfg.Launch.Shell},
		launch.WithExit(func(exitCode int) { code = exitCode }),
	)
	m := tui.New(shell.New(cat, launcher), types.DefaultKeyMap(), c.cfg.Window.Title, cat.Len())

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	os.Exit(code)
	return nil
}
