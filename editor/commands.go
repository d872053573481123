package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// The methods below are the host-facing command surface. Each applies the
// command and returns the updated Model plus any notification command.

func (m Model) Undo() (Model, tea.Cmd) {
	if !m.cfg.ReadOnly {
		_ = m.buf.Undo()
	}
	return m.finish()
}

func (m Model) Redo() (Model, tea.Cmd) {
	if !m.cfg.ReadOnly {
		_ = m.buf.Redo()
	}
	return m.finish()
}

func (m Model) Cut() (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		m.copySelection()
	} else {
		m.cutSelection()
	}
	return m.finish()
}

func (m Model) Copy() (Model, tea.Cmd) {
	m.copySelection()
	return m.finish()
}

func (m Model) Paste() (Model, tea.Cmd) {
	if !m.cfg.ReadOnly {
		m.pasteClipboard()
	}
	return m.finish()
}

func (m Model) SelectAll() (Model, tea.Cmd) {
	m.buf.SelectAll()
	return m.finish()
}

// SetText replaces the document, clearing history and marking it
// unmodified.
func (m Model) SetText(text string) (Model, tea.Cmd) {
	m.buf.SetText(text)
	m.xOffset = 0
	m.viewport.SetYOffset(0)
	return m.finish()
}

// SetModified overrides the modification flag.
func (m Model) SetModified(modified bool) (Model, tea.Cmd) {
	m.buf.SetModified(modified)
	return m.finish()
}

// Refresh picks up changes the host made directly on Buffer.
func (m Model) Refresh() (Model, tea.Cmd) {
	return m.finish()
}

func (m Model) Text() string { return m.buf.Text() }

func (m Model) Modified() bool { return m.buf.Modified() }

func (m Model) CanUndo() bool { return !m.cfg.ReadOnly && m.buf.CanUndo() }

func (m Model) CanRedo() bool { return !m.cfg.ReadOnly && m.buf.CanRedo() }

// CopyAvailable reports whether a non-empty selection exists.
func (m Model) CopyAvailable() bool {
	_, ok := m.buf.Selection()
	return ok
}

func (m Model) finish() (Model, tea.Cmd) {
	m.sync(true)
	cmd := m.notify()
	return m, cmd
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.buf.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if _, ok := m.buf.Selection(); !ok {
		return
	}
	if m.cfg.Clipboard != nil {
		if s := m.buf.SelectedText(); s != "" {
			_ = m.cfg.Clipboard.WriteText(s)
		}
	}
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

// normalizeNewlines converts CRLF and lone CR from external sources to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
