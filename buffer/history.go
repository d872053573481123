package buffer

type bufferSnapshot struct {
	lines  [][]string
	cursor Pos
	sel    selectionState
	state  uint64
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

// snapshot shares line slices with the live buffer. Edits always build new
// line slices in replaceRange, so snapshots are never mutated in place.
func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		lines:  b.lines,
		cursor: b.cursor,
		sel:    b.sel,
		state:  b.mod.current,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = s.lines
	b.cursor = ClampPos(s.cursor, len(b.lines), b.lineLen)
	b.mod.current = s.state

	if !s.sel.active {
		b.sel = selectionState{}
		return
	}
	anchor := ClampPos(s.sel.anchor, len(b.lines), b.lineLen)
	end := ClampPos(s.sel.end, len(b.lines), b.lineLen)
	if anchor == end {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: anchor, end: end}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	b.hist.redo = nil

	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.restore(prev)
	b.version++
	b.textVersion++
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	b.restore(next)
	b.version++
	b.textVersion++
	return true
}
