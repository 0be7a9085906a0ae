package common

import "applauncher/internal/desktop"

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Title() string
	InputView() string
	Visible() []desktop.Entry
	Total() int
	Height() int
	HelpView() string
}
