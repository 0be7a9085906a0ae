package tui

import (
	"applauncher/internal/desktop"
	"applauncher/internal/shell"
	"applauncher/internal/tui/views"
	"applauncher/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the terminal rendition of the launcher. All state lives in the
// shell; the model only translates key messages and renders.
type Model struct {
	shell  *shell.Shell
	keys   types.KeyMap
	input  textinput.Model
	help   help.Model
	title  string
	total  int
	width  int
	height int
}

// New creates a model driving sh. total is the catalog size shown in the
// status line.
func New(sh *shell.Shell, keys types.KeyMap, title string, total int) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search applications"
	ti.Focus()

	return &Model{
		shell: sh,
		keys:  keys,
		input: ti,
		help:  help.New(),
		title: title,
		total: total,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.shell.Cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		if m.shell.Confirm() {
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(msg, m.keys.Backspace):
		if m.shell.Backspace() {
			m.syncInput()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeySpace:
		m.typeRunes([]rune{' '})
	case tea.KeyRunes:
		m.typeRunes(msg.Runes)
	}
	return m, nil
}

func (m *Model) typeRunes(runes []rune) {
	changed := false
	for _, r := range runes {
		if shell.Printable(r) && m.shell.Type(r) {
			changed = true
		}
	}
	if changed {
		m.syncInput()
	}
}

func (m *Model) syncInput() {
	m.input.SetValue(m.shell.Query())
	m.input.CursorEnd()
}

// View implements tea.Model
func (m *Model) View() string {
	if m.shell.Done() {
		return ""
	}
	return views.RenderMainView(m)
}

func (m *Model) Title() string            { return m.title }
func (m *Model) InputView() string        { return m.input.View() }
func (m *Model) Visible() []desktop.Entry { return m.shell.Visible() }
func (m *Model) Total() int               { return m.total }
func (m *Model) Height() int              { return m.height }
func (m *Model) HelpView() string         { return m.help.View(m.keys) }
func (m *Model) Query() string            { return m.shell.Query() }
func (m *Model) State() shell.State       { return m.shell.State() }
