// Package clipboard provides the clipboards used by the editor's cut, copy
// and paste actions.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Memory is an in-process clipboard. The zero value is ready to use.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	return nil
}

// System uses the OS clipboard. Every write is mirrored into an in-process
// fallback, which also serves reads when the OS clipboard is unavailable
// (no xclip/xsel/wl-clipboard, headless sessions).
type System struct {
	fallback Memory
	read     func() (string, error)
	write    func(string) error
}

// NewSystem returns a System clipboard backed by github.com/atotto/clipboard.
func NewSystem() *System {
	return &System{read: clipboard.ReadAll, write: clipboard.WriteAll}
}

// Available reports whether the OS clipboard can be used at all.
func Available() bool {
	return !clipboard.Unsupported
}

func (s *System) ReadText() (string, error) {
	if Available() {
		if text, err := s.read(); err == nil {
			return text, nil
		}
	}
	return s.fallback.ReadText()
}

func (s *System) WriteText(text string) error {
	_ = s.fallback.WriteText(text)
	if !Available() {
		return nil
	}
	return s.write(text)
}
