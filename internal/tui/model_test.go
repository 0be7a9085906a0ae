package tui

import (
	"testing"

	"applauncher/internal/catalog"
	"applauncher/internal/desktop"
	"applauncher/internal/shell"
	"applauncher/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	launched  []desktop.Entry
	cancelled int
}

func (r *fakeRunner) Launch(e desktop.Entry) { r.launched = append(r.launched, e) }
func (r *fakeRunner) Cancel()                { r.cancelled++ }

func newTestModel(t *testing.T) (*Model, *fakeRunner) {
	t.Helper()
	r := &fakeRunner{}
	cat := catalog.New([]desktop.Entry{
		{Name: "Firefox", Exec: "firefox"},
		{Name: "Terminal", Exec: "xterm"},
	})
	return New(shell.New(cat, r), types.DefaultKeyMap(), "applauncher", cat.Len()), r
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInitialization(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Nil(t, m.Init())
	assert.Equal(t, "", m.Query())
	assert.Equal(t, shell.Idle, m.State())
	assert.Len(t, m.Visible(), 2)
	assert.Equal(t, 2, m.Total())
	assert.Contains(t, m.View(), "Firefox")
	assert.Contains(t, m.View(), "Terminal")
}

func TestModelTyping(t *testing.T) {
	m, r := newTestModel(t)

	typeText(m, "fire")
	assert.Equal(t, "fire", m.Query())
	assert.Equal(t, shell.Filtering, m.State())
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, "Firefox", m.Visible()[0].Name)
	assert.Contains(t, m.InputView(), "fire")
	assert.Empty(t, r.launched)

	t.Run("space extends the query", func(t *testing.T) {
		m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		assert.Equal(t, "fire ", m.Query())
		assert.Empty(t, m.Visible())
	})

	t.Run("backspace removes the last character", func(t *testing.T) {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		assert.Nil(t, cmd)
		assert.Equal(t, "fire", m.Query())
		assert.Len(t, m.Visible(), 1)
	})
}

func TestModelNonPrintableIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'é'}})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "", m.Query())
	assert.Equal(t, shell.Idle, m.State())
}

func TestModelBackspaceOnEmptyQuery(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", m.Query())
	assert.Equal(t, shell.Idle, m.State())
}

func TestModelConfirm(t *testing.T) {
	t.Run("launches first visible entry", func(t *testing.T) {
		m, r := newTestModel(t)
		typeText(m, "term")
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.True(t, isQuit(cmd))
		require.Len(t, r.launched, 1)
		assert.Equal(t, "xterm", r.launched[0].Exec)
		assert.Equal(t, shell.Activated, m.State())
		assert.Equal(t, "", m.View())
	})

	t.Run("no match does nothing", func(t *testing.T) {
		m, r := newTestModel(t)
		typeText(m, "xyz123")
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, isQuit(cmd))
		assert.Empty(t, r.launched)
		assert.Equal(t, shell.Filtering, m.State())
		assert.Contains(t, m.View(), "No matching applications")
	})
}

func TestModelCancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m, r := newTestModel(t)
			typeText(m, "fire")
			_, cmd := m.Update(msg)
			assert.True(t, isQuit(cmd))
			assert.Equal(t, 1, r.cancelled)
			assert.Empty(t, r.launched)
			assert.Equal(t, shell.Cancelled, m.State())
		})
	}
}

func TestModelWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 24, m.Height())
	assert.Contains(t, m.HelpView(), "launch")
}
