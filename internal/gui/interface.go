package gui

import (
	"applauncher/internal/config"
	"applauncher/internal/shell"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
}

// Factory creates GUI instances
type Factory struct {
	config *config.Config
	shell  *shell.Shell
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config, sh *shell.Shell) *Factory {
	return &Factory{
		config: cfg,
		shell:  sh,
	}
}
