package buffer

import (
	"strings"

	"github.com/iw2rmb/notepad/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case row == 0 && col == 0:
		return
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	default:
		// Join with the previous line.
		prev := Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		b.edit(Range{Start: prev, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	switch {
	case row == lastRow && col == len(b.lines[lastRow]):
		return
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	default:
		// Join with the next line.
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(r, "")
}

// edit replaces r with text as one undoable step.
func (b *Buffer) edit(r Range, text string) {
	prev := b.snapshot()
	nextCursor, changed := b.replaceRange(r, text)
	if !changed {
		return
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.mod.advance()
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}
	if textForLinesRange(b.lines, r) == text {
		return b.cursor, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	prefix := b.lines[startRow][:startCol]
	suffix := b.lines[endRow][endCol:]

	parts := strings.Split(text, "\n")
	repl := make([][]string, 0, len(parts))
	for i, p := range parts {
		ins := grapheme.Split(p)
		var line []string
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, ins...)
		if i == len(parts)-1 {
			nextCursor = Pos{Row: startRow + i, GraphemeCol: len(line)}
			line = append(line, suffix...)
		}
		repl = append(repl, line)
	}

	out := make([][]string, 0, len(b.lines)-(endRow-startRow)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	b.lines = out
	return nextCursor, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol
	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == startRow {
			from = startCol
		}
		if row == endRow {
			to = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
