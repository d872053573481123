package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/notepad/internal/session"
)

func dialogResult(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestConfirmDialog_Hotkeys(t *testing.T) {
	cases := []struct {
		key  tea.KeyMsg
		want session.Choice
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, session.ChoiceSave},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("D")}, session.ChoiceDiscard},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, session.ChoiceCancel},
		{tea.KeyMsg{Type: tea.KeyEsc}, session.ChoiceCancel},
		{tea.KeyMsg{Type: tea.KeyEnter}, session.ChoiceSave},
	}
	for _, tc := range cases {
		t.Run(tc.key.String(), func(t *testing.T) {
			d := newConfirmDialog(DefaultKeyMap())
			_, cmd := d.Update(tc.key)
			assert.Equal(t, confirmResultMsg{choice: tc.want}, dialogResult(t, cmd))
		})
	}
}

func TestConfirmDialog_FocusWraps(t *testing.T) {
	d := newConfirmDialog(DefaultKeyMap())

	d.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, confirmResultMsg{choice: session.ChoiceCancel}, dialogResult(t, cmd))

	d.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, confirmResultMsg{choice: session.ChoiceSave}, dialogResult(t, cmd))
}

func TestConfirmDialog_View(t *testing.T) {
	view := newConfirmDialog(DefaultKeyMap()).View(80, 24)
	assert.Contains(t, view, confirmTitle)
	assert.Contains(t, view, "Save")
	assert.Contains(t, view, "Discard")
	assert.Contains(t, view, "Cancel")
}

func TestErrorDialog_Dismiss(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeySpace, Runes: []rune(" ")},
	} {
		d := newErrorDialog(DefaultKeyMap(), "Error", "boom")
		_, cmd := d.Update(k)
		assert.Equal(t, errorDismissedMsg{}, dialogResult(t, cmd), k.String())
	}

	d := newErrorDialog(DefaultKeyMap(), "Error", "boom")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}

func TestSaveDialog(t *testing.T) {
	dir := t.TempDir()

	t.Run("enter resolves relative path", func(t *testing.T) {
		d, _ := newSaveDialog(DefaultKeyMap(), "", dir, session.DefaultFilters)
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("notes.txt")})
		_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, pathResultMsg{path: filepath.Join(dir, "notes.txt")}, dialogResult(t, cmd))
	})

	t.Run("suggested path is prefilled", func(t *testing.T) {
		d, _ := newSaveDialog(DefaultKeyMap(), "/docs/a.txt", dir, session.DefaultFilters)
		_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, pathResultMsg{path: "/docs/a.txt"}, dialogResult(t, cmd))
	})

	t.Run("empty input is ignored", func(t *testing.T) {
		d, _ := newSaveDialog(DefaultKeyMap(), "", dir, session.DefaultFilters)
		_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
	})

	t.Run("esc cancels", func(t *testing.T) {
		d, _ := newSaveDialog(DefaultKeyMap(), "/docs/a.txt", dir, session.DefaultFilters)
		_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, pathResultMsg{}, dialogResult(t, cmd))
	})

	t.Run("ctrl+t cycles the filter label", func(t *testing.T) {
		d, _ := newSaveDialog(DefaultKeyMap(), "", dir, session.DefaultFilters)
		assert.Contains(t, d.View(80, 24), "Text Files (*.txt)")
		d.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
		assert.Contains(t, d.View(80, 24), "All Files (*)")
	})
}

func TestOpenDialog_EscAndFilter(t *testing.T) {
	d, _ := newOpenDialog(DefaultKeyMap(), t.TempDir(), session.DefaultFilters, false, 24)
	assert.Equal(t, []string{".txt"}, d.picker.AllowedTypes)

	d.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Nil(t, d.picker.AllowedTypes)
	assert.Contains(t, d.View(80, 24), "All Files (*)")

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, pathResultMsg{}, dialogResult(t, cmd))
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "/a/b.txt", resolvePath("/a/b.txt", "/work"))
	assert.Equal(t, "/work/b.txt", resolvePath("b.txt", "/work"))
	assert.Equal(t, "/work/c.txt", resolvePath("x/../c.txt", "/work"))
	assert.Equal(t, filepath.Join(home, "n.txt"), resolvePath("~/n.txt", "/work"))
}
