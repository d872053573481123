package buffer

import "github.com/iw2rmb/notepad/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, extends the selection; otherwise clears it
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	// Collapsing a selection with a plain left/right lands on its edge.
	if !m.Extend && m.Unit == MoveGrapheme {
		if r, ok := b.Selection(); ok {
			switch m.Dir {
			case DirLeft:
				nextCursor = r.Start
			case DirRight:
				nextCursor = r.End
			}
		}
	}

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

// MoveTo places the cursor at p. With extend, the selection grows from its
// current anchor (or the old cursor) to p.
func (b *Buffer) MoveTo(p Pos, extend bool) {
	if !extend {
		b.SetCursor(p)
		return
	}
	anchor := b.cursor
	if b.sel.active && b.sel.anchor != b.sel.end {
		anchor = b.sel.anchor
	}
	b.SetSelection(Range{Start: anchor, End: p})
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
	case DirRight:
		if col < len(b.lines[row]) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	line := b.lines[row]

	switch dir {
	case DirLeft:
		if col == 0 && row > 0 {
			return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		}
		return Pos{Row: row, GraphemeCol: prevWordBoundary(line, col)}
	case DirRight:
		if col == len(line) && row < len(b.lines)-1 {
			return Pos{Row: row + 1}
		}
		return Pos{Row: row, GraphemeCol: nextWordBoundary(line, col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, GraphemeCol: len(b.lines[row])}
	case DirUp:
		if row == 0 {
			return Pos{}
		}
		return Pos{Row: row - 1, GraphemeCol: min(col, len(b.lines[row-1]))}
	case DirDown:
		if row == lastRow {
			return Pos{Row: row, GraphemeCol: len(b.lines[row])}
		}
		return Pos{Row: row + 1, GraphemeCol: min(col, len(b.lines[row+1]))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}
	default:
		return p
	}
}

// Word boundaries skip whitespace, then non-whitespace, within one line.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
