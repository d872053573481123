// Package editor provides the Bubble Tea text widget the notepad edits in.
//
// The widget owns a buffer.Buffer and is responsible for input handling,
// viewport behavior, soft wrapping and grapheme-aware rendering. Hosts use
// the Undo/Redo/Cut/Copy/Paste methods for menu commands and listen for
// ModificationChangedMsg and CopyAvailableMsg to keep their chrome in sync.
package editor
