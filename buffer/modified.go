package buffer

// noCleanState marks a document whose clean state is unreachable because
// the host forced the modified flag on.
const noCleanState = ^uint64(0)

// modState tracks the modification flag by identity of text states rather
// than by a sticky bit, so undoing back to the saved text clears it again.
type modState struct {
	current uint64
	last    uint64
	clean   uint64
}

func (s *modState) advance() {
	s.last++
	s.current = s.last
}

func (s *modState) markClean() { s.clean = s.current }

// Modified reports whether the text differs from the last state marked clean.
func (b *Buffer) Modified() bool {
	return b.mod.current != b.mod.clean
}

// SetModified sets the modification flag. false marks the current text as the
// clean state (for example, right after it was written to disk).
func (b *Buffer) SetModified(modified bool) {
	if modified {
		b.mod.clean = noCleanState
		return
	}
	b.mod.markClean()
}
