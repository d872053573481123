package editor

import "github.com/iw2rmb/notepad/buffer"

// ScreenToDoc maps viewport-local screen coordinates to a document position.
//
// Coordinates use terminal cells relative to the editor viewport; x/y are
// clamped into document bounds and gutter clicks map to column 0.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	return (&m).screenToDocPos(x, y)
}

// DocToScreen maps a document position to viewport-local screen coordinates.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) DocToScreen(pos buffer.Pos) (x, y int, ok bool) {
	l := (&m).ensureLayout()
	visualRow, cell := l.visualPos(pos)
	_, seg, _ := l.rowAt(visualRow)

	x = cell - seg.startCell
	if m.cfg.WrapMode == WrapNone {
		x = cell - m.xOffset
	}
	x += (&m).gutterWidth()
	y = visualRow - m.viewport.YOffset

	if y < 0 || y >= (&m).visibleRowCount() || x < 0 || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}

func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	l := m.ensureLayout()
	line, seg, row := l.rowAt(m.viewport.YOffset + maxInt(y, 0))

	x -= m.gutterWidth()
	if x < 0 {
		return buffer.Pos{Row: row, GraphemeCol: seg.StartCol}
	}
	if m.cfg.WrapMode == WrapNone {
		x += m.xOffset
	}
	return buffer.Pos{Row: row, GraphemeCol: colInSegment(line.visual, seg, x)}
}
