package editor

import tea "github.com/charmbracelet/bubbletea"

// ModificationChangedMsg is emitted when the buffer's modification flag
// flips, including flips caused by undo and redo.
type ModificationChangedMsg struct {
	Modified bool
}

// CopyAvailableMsg is emitted when a non-empty selection appears or
// disappears.
type CopyAvailableMsg struct {
	Available bool
}

func (m *Model) snapshotState() {
	m.lastVersion = m.buf.Version()
	m.lastModified = m.buf.Modified()
	m.lastCopyAvailable = m.CopyAvailable()
}

// notify returns a command that reports state flips since the last call.
func (m *Model) notify() tea.Cmd {
	var cmds []tea.Cmd
	if mod := m.buf.Modified(); mod != m.lastModified {
		m.lastModified = mod
		cmds = append(cmds, msgCmd(ModificationChangedMsg{Modified: mod}))
	}
	if avail := m.CopyAvailable(); avail != m.lastCopyAvailable {
		m.lastCopyAvailable = avail
		cmds = append(cmds, msgCmd(CopyAvailableMsg{Available: avail}))
	}
	return tea.Batch(cmds...)
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
