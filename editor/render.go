package editor

import (
	"strings"

	"github.com/iw2rmb/notepad/buffer"
)

func (m *Model) renderContent() string {
	l := m.ensureLayout()

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	width := m.contentWidth()
	cursorVisualRow := l.rowOf(cursor)

	out := make([]string, 0, len(l.rows))
	for _, ref := range l.rows {
		line := l.lines[ref.logicalRow]
		seg := line.segments[ref.segmentIndex]

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(ref.logicalRow, ref.segmentIndex, cursor.Row))
		}

		left, right := seg.startCell, seg.endCell
		if m.cfg.WrapMode == WrapNone {
			left = m.xOffset
			right = left + width
			if width <= 0 {
				right = line.visual.width() + 1
			}
		}

		cursorCol := -1
		if m.focused && cursorVisualRow == line.firstVisualRow+ref.segmentIndex {
			cursorCol = cursor.GraphemeCol
		}

		sb.WriteString(m.renderSegment(line.visual, seg, ref.logicalRow, left, right, cursorCol, sel, selOK))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (l *layout) rowOf(p buffer.Pos) int {
	row, _ := l.visualPos(p)
	return row
}

// renderSegment renders the graphemes of seg that fall inside the cell span
// [left, right). cursorCol is -1 when the cursor is not on this visual row.
func (m *Model) renderSegment(vl visualLine, seg wrappedSegment, row, left, right, cursorCol int, sel buffer.Range, selOK bool) string {
	st := m.cfg.Style
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(vl.graphemes))

	var sb strings.Builder
	for col := seg.StartCol; col < seg.EndCol; col++ {
		start, end := vl.cells[col], vl.cells[col+1]
		spanL, spanR := maxInt(start, left), minInt(end, right)
		if spanL >= spanR {
			continue
		}

		text := vl.texts[col]
		if spanL != start || spanR != end {
			// Partially visible wide grapheme or tab: keep alignment with blanks.
			text = strings.Repeat(" ", spanR-spanL)
		}

		switch {
		case col == cursorCol:
			if strings.TrimSpace(text) == "" {
				// Terminals may elide trailing spaces; NBSP keeps the cursor visible.
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
			sb.WriteString(st.Cursor.Render(text))
		case hasSel && col >= selStart && col < selEnd:
			sb.WriteString(st.Selection.Render(text))
		default:
			sb.WriteString(st.Text.Render(text))
		}
	}

	// Cursor at end of line is rendered as a 1-cell placeholder.
	if cursorCol == len(vl.graphemes) {
		cell := vl.width()
		if cell >= left && cell < right {
			sb.WriteString(st.Cursor.Render(" "))
		}
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.GraphemeCol
	}
	if row == sel.End.Row {
		end = sel.End.GraphemeCol
	}
	return start, end, start < end
}
