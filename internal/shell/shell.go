// Package shell is the toolkit-neutral state of the launcher UI: the query,
// the entries currently shown and the Idle/Filtering/Activated/Cancelled
// state machine. The GUI and TUI frontends drive it from their key events.
package shell

import (
	"applauncher/internal/catalog"
	"applauncher/internal/desktop"
)

// State is the UI state.
type State int

const (
	Idle State = iota
	Filtering
	Activated
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Filtering:
		return "filtering"
	case Activated:
		return "activated"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Runner carries out the two terminal actions.
type Runner interface {
	Launch(e desktop.Entry)
	Cancel()
}

// Shell owns the query and the visible entries. Visible always equals
// catalog.Filter(query).
type Shell struct {
	catalog *catalog.Catalog
	runner  Runner
	query   []rune
	visible []desktop.Entry
	state   State
}

// New creates a shell showing the whole catalog.
func New(cat *catalog.Catalog, runner Runner) *Shell {
	return &Shell{
		catalog: cat,
		runner:  runner,
		visible: cat.Filter(""),
		state:   Idle,
	}
}

func (s *Shell) Query() string {
	return string(s.query)
}

// Visible returns a copy of the entries currently shown, in catalog order.
func (s *Shell) Visible() []desktop.Entry {
	out := make([]desktop.Entry, len(s.visible))
	copy(out, s.visible)
	return out
}

func (s *Shell) State() State {
	return s.state
}

// Done reports whether the shell reached a terminal state.
func (s *Shell) Done() bool {
	return s.state == Activated || s.state == Cancelled
}

// Type appends r to the query and refilters.
func (s *Shell) Type(r rune) bool {
	if s.Done() {
		return false
	}
	s.query = append(s.query, r)
	s.refilter()
	return true
}

// Backspace removes the last character of the query, if any.
func (s *Shell) Backspace() bool {
	if s.Done() || len(s.query) == 0 {
		return false
	}
	s.query = s.query[:len(s.query)-1]
	s.refilter()
	return true
}

// Confirm activates the first visible entry. With nothing visible it does
// nothing.
func (s *Shell) Confirm() bool {
	return s.Activate(0)
}

// Activate launches the i-th visible entry.
func (s *Shell) Activate(i int) bool {
	if s.Done() || i < 0 || i >= len(s.visible) {
		return false
	}
	s.state = Activated
	s.runner.Launch(s.visible[i])
	return true
}

// Cancel ends the session without launching anything.
func (s *Shell) Cancel() {
	if s.Done() {
		return
	}
	s.state = Cancelled
	s.runner.Cancel()
}

func (s *Shell) refilter() {
	s.visible = s.catalog.Filter(string(s.query))
	s.state = Filtering
}
