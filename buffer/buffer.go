package buffer

import (
	"strings"

	"github.com/iw2rmb/notepad/internal/grapheme"
)

// DefaultHistoryLimit bounds the undo stack when Options.HistoryLimit is 0.
const DefaultHistoryLimit = 1000

type Options struct {
	// HistoryLimit caps the number of undo steps. 0 selects
	// DefaultHistoryLimit; a negative value disables history.
	HistoryLimit int
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the document state: text, cursor, selection, history and the
// modification flag. It is not safe for concurrent use.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState
	mod  modState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = DefaultHistoryLimit
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, g := range line {
			sb.WriteString(g)
		}
	}
	return sb.String()
}

// SetText replaces the whole document. The cursor moves to the start, the
// selection and undo/redo history are dropped, and the new content is
// marked unmodified.
func (b *Buffer) SetText(text string) {
	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.hist = historyState{}
	b.version++
	b.textVersion++
	b.mod.advance()
	b.mod.markClean()
}

// IsEmpty reports whether the document has no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Version changes whenever text, cursor or selection change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the text changes (including undo/redo).
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// LineCount returns the number of logical lines (always at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the grapheme clusters of row. The slice must not be modified.
func (b *Buffer) Line(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the selection anchor/end without normalization, so
// callers can tell which end the cursor sits on.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r (anchor at r.Start) and moves the cursor to r.End.
// An empty range clears the selection.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	if selectionStateEqual(b.sel, next) && b.cursor == clamped.End {
		return
	}

	b.sel = next
	b.cursor = clamped.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectAll selects the whole document.
func (b *Buffer) SelectAll() {
	last := len(b.lines) - 1
	b.SetSelection(Range{End: Pos{Row: last, GraphemeCol: len(b.lines[last])}})
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForLinesRange(b.lines, r)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
