package tui

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/notepad/editor"
	"github.com/iw2rmb/notepad/internal/config"
	"github.com/iw2rmb/notepad/internal/logging"
	"github.com/iw2rmb/notepad/internal/session"
)

// Options wires the application model to its collaborators.
type Options struct {
	Config    *config.Config
	Store     session.Store
	Clipboard editor.Clipboard
	Logger    *logging.Logger
	// WorkDir anchors relative save paths and is the fallback open directory.
	WorkDir string
}

// statusTimeoutMsg clears the status line if it still shows message id.
type statusTimeoutMsg struct {
	id int
}

// Model is the notepad window: menu bar, editor, status bar and the modal
// dialogs that answer pending session flows.
type Model struct {
	cfg     *config.Config
	logger  *logging.Logger
	keys    KeyMap
	workDir string

	editor   editor.Model
	session  *session.Session
	reporter *reporter
	flow     *session.Flow

	menu          menuBar
	dialog        dialog
	pendingErrors []*errorDialog

	status   string
	statusID int
	help     help.Model

	title         string
	copyAvailable bool
	width, height int
	quitting      bool
}

// New returns the window for an empty, untitled document.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	ekeys := editor.DefaultKeyMap()
	ed := editor.New(editor.Config{
		ShowLineNums: cfg.Editor.ShowLineNumbers,
		WrapMode:     editor.ParseWrapMode(cfg.Editor.Wrap),
		TabWidth:     cfg.Editor.TabWidth,
		HistoryLimit: cfg.Editor.HistoryLimit,
		Style:        editor.DefaultStyle(),
		KeyMap:       ekeys,
		Clipboard:    opts.Clipboard,
	})

	rep := &reporter{}
	sess := session.New(ed.Buffer(), opts.Store,
		session.WithReporter(rep),
		session.WithLogger(logger),
	)

	keys := DefaultKeyMap()
	m := Model{
		cfg:      cfg,
		logger:   logger.WithComponent("tui"),
		keys:     keys,
		workDir:  opts.WorkDir,
		editor:   ed,
		session:  sess,
		reporter: rep,
		menu: newMenuBar(keys, editorBindings{
			Undo:      ekeys.Undo,
			Redo:      ekeys.Redo,
			Cut:       ekeys.Cut,
			Copy:      ekeys.Copy,
			Paste:     ekeys.Paste,
			SelectAll: ekeys.SelectAll,
		}),
		help: help.New(),
	}
	m.title = sess.Title()
	return m
}

// Session exposes the document session.
func (m Model) Session() *session.Session { return m.session }

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	cmd = tea.Batch(cmd, next.syncTitle())
	return next, cmd
}

// syncTitle pushes the window title to the terminal when it changed.
func (m *Model) syncTitle() tea.Cmd {
	title := m.session.Title()
	if title == m.title {
		return nil
	}
	m.title = title
	return tea.SetWindowTitle(title)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, m.editorHeight())
		return m, nil

	case statusTimeoutMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case confirmResultMsg:
		m.dialog = nil
		if m.flow != nil {
			if err := m.flow.Choose(msg.choice); err != nil {
				m.logger.Warn("dialog answer rejected", "error", err)
			}
		}
		return m.advance()

	case pathResultMsg:
		m.dialog = nil
		if m.flow != nil {
			if err := m.flow.PickPath(msg.path); err != nil {
				m.logger.Warn("dialog answer rejected", "error", err)
			}
		}
		return m.advance()

	case errorDismissedMsg:
		m.dialog = nil
		return m.advance()

	case editor.ModificationChangedMsg:
		return m, nil

	case editor.CopyAvailableMsg:
		m.copyAvailable = msg.Available
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}
	if m.menu.isOpen() {
		return m.updateMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.New):
		return m.run(cmdNew)
	case key.Matches(msg, m.keys.Open):
		return m.run(cmdOpen)
	case key.Matches(msg, m.keys.Save):
		return m.run(cmdSave)
	case key.Matches(msg, m.keys.SaveAs):
		return m.run(cmdSaveAs)
	case key.Matches(msg, m.keys.Quit):
		return m.run(cmdExit)
	case key.Matches(msg, m.keys.Menu, m.keys.FileMenu):
		m.menu = m.menu.openMenu(0)
		return m, nil
	case key.Matches(msg, m.keys.EditMenu):
		m.menu = m.menu.openMenu(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape, m.keys.Menu):
		m.menu = m.menu.close()
	case key.Matches(msg, m.keys.Left, m.keys.Prev):
		m.menu = m.menu.openMenu(m.menu.open - 1)
	case key.Matches(msg, m.keys.Right, m.keys.Next):
		m.menu = m.menu.openMenu(m.menu.open + 1)
	case key.Matches(msg, m.keys.Up):
		m.menu = m.menu.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.menu = m.menu.moveSelection(1)
	case key.Matches(msg, m.keys.FileMenu):
		m.menu = m.menu.openMenu(0)
	case key.Matches(msg, m.keys.EditMenu):
		m.menu = m.menu.openMenu(1)
	case key.Matches(msg, m.keys.Enter):
		item, _ := m.menu.current()
		if !m.enabled(item.command) {
			return m, nil
		}
		m.menu = m.menu.close()
		return m.run(item.command)
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.dialog != nil {
		return m, nil
	}

	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if press && msg.Y == 0 {
		if i, ok := m.menu.menuAt(msg.X); ok {
			if m.menu.open == i {
				m.menu = m.menu.close()
			} else {
				m.menu = m.menu.openMenu(i)
			}
			return m, nil
		}
	}
	if m.menu.isOpen() {
		if press {
			if item, ok := m.menuItemAt(msg.X, msg.Y); ok {
				m.menu = m.menu.close()
				if m.enabled(item.command) {
					return m.run(item.command)
				}
				return m, nil
			}
			m.menu = m.menu.close()
		}
		return m, nil
	}

	msg.Y--
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// menuItemAt maps a click inside the open drop-down to its item.
func (m Model) menuItemAt(x, y int) (menuItem, bool) {
	if !m.menu.isOpen() {
		return menuItem{}, false
	}
	drop, left := m.menu.renderDropdown(m.enabled)
	w := lipgloss.Width(drop)
	// Row 0 is the bar and row 1 the top border of the drop-down.
	i := y - 2
	items := m.menu.menus[m.menu.open].items
	if x <= left || x >= left+w-1 || i < 0 || i >= len(items) {
		return menuItem{}, false
	}
	return items[i], true
}

// enabled reports whether a menu command can run right now.
func (m Model) enabled(c command) bool {
	switch c {
	case cmdUndo:
		return m.editor.CanUndo()
	case cmdRedo:
		return m.editor.CanRedo()
	case cmdCut, cmdCopy:
		return m.copyAvailable
	default:
		return true
	}
}

// run executes a menu command. File commands start a session flow; edit
// commands go straight to the editor.
func (m Model) run(c command) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch c {
	case cmdNew:
		return m.startAction(session.ActionNew)
	case cmdOpen:
		return m.startAction(session.ActionOpen)
	case cmdSave:
		return m.startAction(session.ActionSave)
	case cmdSaveAs:
		return m.startAction(session.ActionSaveAs)
	case cmdExit:
		return m.startAction(session.ActionClose)
	case cmdUndo:
		m.editor, cmd = m.editor.Undo()
	case cmdRedo:
		m.editor, cmd = m.editor.Redo()
	case cmdCut:
		m.editor, cmd = m.editor.Cut()
	case cmdCopy:
		m.editor, cmd = m.editor.Copy()
	case cmdPaste:
		m.editor, cmd = m.editor.Paste()
	case cmdSelectAll:
		m.editor, cmd = m.editor.SelectAll()
	}
	return m, cmd
}

func (m Model) startAction(a session.Action) (Model, tea.Cmd) {
	if m.flow != nil {
		return m, nil
	}
	m.logger.Debug("action started", "action", a.String())
	m.flow = m.session.Begin(a)
	return m.advance()
}

// advance reacts to the current flow state: it shows reported errors and
// status lines, opens the dialog for a pending prompt, or finishes the flow.
func (m Model) advance() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.editor, cmd = m.editor.Refresh()
	cmds = append(cmds, cmd)

	for _, s := range m.reporter.takeStatuses() {
		cmds = append(cmds, m.setStatus(s))
	}
	for _, e := range m.reporter.takeErrors() {
		m.pendingErrors = append(m.pendingErrors, newErrorDialog(m.keys, e.title, e.message))
	}

	if m.dialog == nil && len(m.pendingErrors) > 0 {
		m.dialog = m.pendingErrors[0]
		m.pendingErrors = m.pendingErrors[1:]
	}
	if m.dialog != nil || m.flow == nil {
		return m, tea.Batch(cmds...)
	}

	if p, ok := m.flow.Pending(); ok {
		m.dialog, cmd = m.promptDialog(p)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	action, outcome := m.flow.Action(), m.flow.Outcome()
	m.flow = nil
	m.logger.Debug("action finished", "action", action.String(), "outcome", outcome.String())
	if action == session.ActionClose && outcome == session.OutcomeDone {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) promptDialog(p session.Prompt) (dialog, tea.Cmd) {
	switch p.Kind {
	case session.PromptOpenPath:
		return newOpenDialog(m.keys, m.openDir(), p.Filters, m.cfg.Files.ShowHidden, m.height)
	case session.PromptSavePath:
		return newSaveDialog(m.keys, p.Suggested, m.workDir, p.Filters)
	default:
		return newConfirmDialog(m.keys), nil
	}
}

// openDir is the directory of the current file, else the configured start
// directory, else the working directory.
func (m Model) openDir() string {
	if path, ok := m.session.Path(); ok {
		return filepath.Dir(path)
	}
	if m.cfg.Files.StartDir != "" {
		return m.cfg.Files.StartDir
	}
	if m.workDir != "" {
		return m.workDir
	}
	return "."
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusID++
	id := m.statusID
	timeout := m.cfg.UI.StatusTimeout()
	if timeout <= 0 {
		return nil
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return statusTimeoutMsg{id: id}
	})
}

func (m Model) editorHeight() int {
	h := m.height - 2
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	bar := m.menu.renderBar(m.width, m.title)
	body := m.editor.View()

	if m.menu.isOpen() {
		drop, x := m.menu.renderDropdown(m.enabled)
		body = overlay.Composite(drop, body, overlay.Left, overlay.Top, x, 0)
	}
	if m.dialog != nil {
		box := m.dialog.View(m.width, m.editorHeight())
		body = overlay.Composite(box, body, overlay.Center, overlay.Center, 0, 0)
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, body, m.renderStatusBar())
}

func (m Model) renderStatusBar() string {
	left := StatusMessageStyle.Render(m.status)
	right := m.help.View(m.keys)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return StatusBarStyle.Render(left)
	}
	return StatusBarStyle.Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}
