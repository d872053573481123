package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int
	layout   *layout

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastVersion       uint64
	lastModified      bool
	lastCopyAvailable bool
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.viewport.MouseWheelDelta = 3
	m.snapshotState()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Config() Config { return m.cfg }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Wheel scrolling moves the viewport without the cursor.
		m.sync(false)
		cmd = tea.Batch(cmd, m.notify())
		return m, cmd
	}
	m.sync(true)
	cmd = tea.Batch(cmd, m.notify())
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// sync re-renders after the buffer changed and, with follow, scrolls the
// cursor into view.
func (m *Model) sync(follow bool) {
	if m.buf.Version() == m.lastVersion {
		return
	}
	m.lastVersion = m.buf.Version()
	m.rebuildContent()
	if follow {
		m.followCursor()
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	if w < 0 {
		return 0
	}
	return w
}

func (m *Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

func (m *Model) followCursor() {
	l := m.ensureLayout()
	visualRow, cell := l.visualPos(m.buf.Cursor())

	if h := m.visibleRowCount(); h > 0 {
		y := m.viewport.YOffset
		if visualRow < y {
			m.viewport.SetYOffset(visualRow)
		} else if visualRow >= y+h {
			m.viewport.SetYOffset(visualRow - h + 1)
		}
	}

	if m.cfg.WrapMode != WrapNone {
		if m.xOffset != 0 {
			m.xOffset = 0
			m.rebuildContent()
		}
		return
	}
	w := m.contentWidth()
	if w <= 0 {
		return
	}
	prev := m.xOffset
	if cell < m.xOffset {
		m.xOffset = cell
	} else if cell >= m.xOffset+w {
		m.xOffset = cell - w + 1
	}
	if m.xOffset != prev {
		m.rebuildContent()
	}
}
