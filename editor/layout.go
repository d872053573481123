package editor

import "github.com/iw2rmb/notepad/buffer"

type layoutKey struct {
	textVersion  uint64
	cursorRow    int
	wrapMode     WrapMode
	tabWidth     int
	contentWidth int
	focused      bool
}

type layoutRow struct {
	logicalRow   int
	segmentIndex int
}

type layoutLine struct {
	visual         visualLine
	segments       []wrappedSegment
	firstVisualRow int
}

// layout maps buffer lines to visual rows. It is rebuilt only when the text,
// the cursor row or the geometry changes.
type layout struct {
	valid bool
	key   layoutKey

	lines []layoutLine
	rows  []layoutRow
}

func (m *Model) layoutKey() layoutKey {
	return layoutKey{
		textVersion:  m.buf.TextVersion(),
		cursorRow:    m.buf.Cursor().Row,
		wrapMode:     m.cfg.WrapMode,
		tabWidth:     m.cfg.tabWidth(),
		contentWidth: m.contentWidth(),
		focused:      m.focused,
	}
}

func (m *Model) ensureLayout() *layout {
	key := m.layoutKey()
	if m.layout != nil && m.layout.valid && m.layout.key == key {
		return m.layout
	}

	n := m.buf.LineCount()
	l := &layout{
		valid: true,
		key:   key,
		lines: make([]layoutLine, 0, n),
		rows:  make([]layoutRow, 0, n),
	}
	for row := 0; row < n; row++ {
		vl := buildVisualLine(m.buf.Line(row), key.tabWidth)
		segments := wrapSegments(vl, key.wrapMode, key.contentWidth)

		// A full last row leaves no cell for the end-of-line cursor; give
		// the cursor row an empty continuation instead.
		if key.focused && row == key.cursorRow && key.wrapMode != WrapNone && key.contentWidth > 0 {
			last := segments[len(segments)-1]
			if last.Cells() >= key.contentWidth {
				segments = append(segments, wrappedSegment{
					StartCol:  last.EndCol,
					EndCol:    last.EndCol,
					startCell: last.endCell,
					endCell:   last.endCell,
				})
			}
		}

		l.lines = append(l.lines, layoutLine{
			visual:         vl,
			segments:       segments,
			firstVisualRow: len(l.rows),
		})
		for i := range segments {
			l.rows = append(l.rows, layoutRow{logicalRow: row, segmentIndex: i})
		}
	}

	m.layout = l
	return l
}

func (l *layout) rowAt(visualRow int) (layoutLine, wrappedSegment, int) {
	ref := l.rows[clampInt(visualRow, 0, len(l.rows)-1)]
	line := l.lines[ref.logicalRow]
	return line, line.segments[ref.segmentIndex], ref.logicalRow
}

// visualPos returns the visual row of p and its cell offset within the line.
func (l *layout) visualPos(p buffer.Pos) (visualRow, cell int) {
	row := clampInt(p.Row, 0, len(l.lines)-1)
	line := l.lines[row]
	col := clampInt(p.GraphemeCol, 0, len(line.visual.graphemes))

	segIdx := segmentForCol(line.segments, col)
	// The cursor at a wrap boundary stays at the end of the row only when it
	// is at the end of the line.
	if col == len(line.visual.graphemes) {
		segIdx = len(line.segments) - 1
	}
	return line.firstVisualRow + segIdx, line.visual.cellForCol(col)
}
