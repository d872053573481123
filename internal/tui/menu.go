package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// command is anything the menu bar can trigger.
type command int

const (
	cmdNew command = iota
	cmdOpen
	cmdSave
	cmdSaveAs
	cmdExit
	cmdUndo
	cmdRedo
	cmdCut
	cmdCopy
	cmdPaste
	cmdSelectAll
)

type menuItem struct {
	label   string
	binding key.Binding
	command command
}

type menu struct {
	title string
	items []menuItem
}

// menuBar holds the menus and which one is dropped down. open is -1 while
// the bar is closed.
type menuBar struct {
	menus    []menu
	open     int
	selected int
}

func newMenuBar(app KeyMap, edit editorBindings) menuBar {
	return menuBar{
		open: -1,
		menus: []menu{
			{title: "File", items: []menuItem{
				{label: "New", binding: app.New, command: cmdNew},
				{label: "Open...", binding: app.Open, command: cmdOpen},
				{label: "Save", binding: app.Save, command: cmdSave},
				{label: "Save As...", binding: app.SaveAs, command: cmdSaveAs},
				{label: "Exit", binding: app.Quit, command: cmdExit},
			}},
			{title: "Edit", items: []menuItem{
				{label: "Undo", binding: edit.Undo, command: cmdUndo},
				{label: "Redo", binding: edit.Redo, command: cmdRedo},
				{label: "Cut", binding: edit.Cut, command: cmdCut},
				{label: "Copy", binding: edit.Copy, command: cmdCopy},
				{label: "Paste", binding: edit.Paste, command: cmdPaste},
				{label: "Select All", binding: edit.SelectAll, command: cmdSelectAll},
			}},
		},
	}
}

// editorBindings are the editor shortcuts shown next to Edit menu entries.
type editorBindings struct {
	Undo, Redo, Cut, Copy, Paste, SelectAll key.Binding
}

func (b menuBar) isOpen() bool { return b.open >= 0 }

func (b menuBar) openMenu(i int) menuBar {
	b.open = (i + len(b.menus)) % len(b.menus)
	b.selected = 0
	return b
}

func (b menuBar) close() menuBar {
	b.open = -1
	return b
}

func (b menuBar) moveSelection(delta int) menuBar {
	if !b.isOpen() {
		return b
	}
	n := len(b.menus[b.open].items)
	b.selected = (b.selected + delta + n) % n
	return b
}

func (b menuBar) current() (menuItem, bool) {
	if !b.isOpen() {
		return menuItem{}, false
	}
	return b.menus[b.open].items[b.selected], true
}

// titleSpans returns the [start, end) cell span of each menu title in the bar.
func (b menuBar) titleSpans() [][2]int {
	spans := make([][2]int, len(b.menus))
	x := 0
	for i, mn := range b.menus {
		w := lipgloss.Width(MenuTitleStyle.Render(mn.title))
		spans[i] = [2]int{x, x + w}
		x += w
	}
	return spans
}

// menuAt returns the menu whose title covers cell x.
func (b menuBar) menuAt(x int) (int, bool) {
	for i, span := range b.titleSpans() {
		if x >= span[0] && x < span[1] {
			return i, true
		}
	}
	return 0, false
}

// renderBar renders the bar line with title right-aligned.
func (b menuBar) renderBar(width int, title string) string {
	var sb strings.Builder
	for i, mn := range b.menus {
		style := MenuTitleStyle
		if i == b.open {
			style = MenuTitleActiveStyle
		}
		sb.WriteString(style.Render(mn.title))
	}
	left := sb.String()

	right := WindowTitleStyle.Render(title)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right = ansi.Truncate(right, maxInt(width-lipgloss.Width(left)-1, 0), "…")
		gap = maxInt(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	}
	return MenuBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// renderDropdown renders the open menu; enabled reports which items can run.
func (b menuBar) renderDropdown(enabled func(command) bool) (string, int) {
	if !b.isOpen() {
		return "", 0
	}
	items := b.menus[b.open].items

	labelW, keyW := 0, 0
	for _, it := range items {
		labelW = maxInt(labelW, lipgloss.Width(it.label))
		keyW = maxInt(keyW, lipgloss.Width(it.binding.Help().Key))
	}

	lines := make([]string, len(items))
	for i, it := range items {
		row := " " + padRight(it.label, labelW) + "   " + padLeft(it.binding.Help().Key, keyW) + " "
		style := MenuItemStyle
		switch {
		case !enabled(it.command):
			style = MenuItemDisabledStyle
		case i == b.selected:
			style = MenuItemSelectedStyle
		}
		if i == b.selected && !enabled(it.command) {
			style = MenuItemDisabledStyle.Background(ColorBgActive)
		}
		lines[i] = style.Render(row)
	}
	return MenuStyle.Render(strings.Join(lines, "\n")), b.titleSpans()[b.open][0]
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
