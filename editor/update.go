package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
		m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
	}
	edit := func(fn func()) {
		if !m.cfg.ReadOnly {
			fn()
		}
	}

	switch {
	case key.Matches(msg, km.Left):
		move(buffer.MoveGrapheme, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(buffer.MoveGrapheme, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		m.moveVertical(-1, false)
	case key.Matches(msg, km.Down):
		m.moveVertical(1, false)

	case key.Matches(msg, km.ShiftLeft):
		move(buffer.MoveGrapheme, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(buffer.MoveGrapheme, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		m.moveVertical(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveVertical(1, true)

	case key.Matches(msg, km.WordLeft):
		move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(buffer.MoveWord, buffer.DirRight, false)
	case key.Matches(msg, km.ShiftWordLeft):
		move(buffer.MoveWord, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftWordRight):
		move(buffer.MoveWord, buffer.DirRight, true)

	case key.Matches(msg, km.Home):
		move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.ShiftHome):
		move(buffer.MoveLine, buffer.DirHome, true)
	case key.Matches(msg, km.ShiftEnd):
		move(buffer.MoveLine, buffer.DirEnd, true)
	case key.Matches(msg, km.DocStart):
		move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(buffer.MoveDoc, buffer.DirEnd, false)
	case key.Matches(msg, km.PageUp):
		m.moveVertical(-maxInt(m.visibleRowCount()-1, 1), false)
	case key.Matches(msg, km.PageDown):
		m.moveVertical(maxInt(m.visibleRowCount()-1, 1), false)

	case key.Matches(msg, km.Backspace):
		edit(m.buf.DeleteBackward)
	case key.Matches(msg, km.Delete):
		edit(m.buf.DeleteForward)
	case key.Matches(msg, km.Enter):
		edit(m.buf.InsertNewline)
	case key.Matches(msg, km.Tab):
		edit(func() { m.buf.InsertText("\t") })

	case key.Matches(msg, km.Undo):
		edit(func() { _ = m.buf.Undo() })
	case key.Matches(msg, km.Redo):
		edit(func() { _ = m.buf.Redo() })

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if m.cfg.ReadOnly {
			m.copySelection()
		} else {
			m.cutSelection()
		}
	case key.Matches(msg, km.Paste):
		edit(m.pasteClipboard)
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			edit(func() { m.buf.InsertText(string(msg.Runes)) })
		} else if msg.Type == tea.KeySpace {
			edit(func() { m.buf.InsertText(" ") })
		}
	}

	return m, nil
}

// moveVertical moves the cursor by delta visual rows, keeping its cell
// column. At the first or last row it moves to the document edge.
func (m *Model) moveVertical(delta int, extend bool) {
	l := m.ensureLayout()
	visualRow, cell := l.visualPos(m.buf.Cursor())

	target := visualRow + delta
	switch {
	case target < 0:
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome, Extend: extend})
		return
	case target >= len(l.rows):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd, Extend: extend})
		return
	}

	_, seg, _ := l.rowAt(visualRow)
	line, tseg, row := l.rowAt(target)
	x := cell - seg.startCell
	col := colInSegment(line.visual, tseg, x)
	m.buf.MoveTo(buffer.Pos{Row: row, GraphemeCol: col}, extend)
}

// colInSegment maps a cell offset relative to the segment start to a column
// inside the segment.
func colInSegment(vl visualLine, seg wrappedSegment, x int) int {
	if x <= 0 {
		return seg.StartCol
	}
	col := vl.colForCell(seg.startCell + x)
	// A column equal to EndCol would show on the next visual row, except on
	// the last segment of the line.
	if col >= seg.EndCol && seg.EndCol < len(vl.graphemes) {
		return maxInt(seg.EndCol-1, seg.StartCol)
	}
	return clampInt(col, seg.StartCol, seg.EndCol)
}
