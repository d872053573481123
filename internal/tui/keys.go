package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings. Everything else goes
// to the editor.
type KeyMap struct {
	New    key.Binding
	Open   key.Binding
	Save   key.Binding
	SaveAs key.Binding
	Quit   key.Binding

	// Menus
	Menu     key.Binding
	FileMenu key.Binding
	EditMenu key.Binding

	// Menu and dialog navigation
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Escape key.Binding

	// Dialogs
	ToggleFilter key.Binding
	Dismiss      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		SaveAs: key.NewBinding(
			key.WithKeys("f12"),
			key.WithHelp("f12", "save as"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "exit"),
		),
		Menu: key.NewBinding(
			key.WithKeys("f10"),
			key.WithHelp("f10", "menu"),
		),
		FileMenu: key.NewBinding(
			key.WithKeys("alt+f"),
			key.WithHelp("alt+f", "file menu"),
		),
		EditMenu: key.NewBinding(
			key.WithKeys("alt+e"),
			key.WithHelp("alt+e", "edit menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ToggleFilter: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "filter"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "ok"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Open, k.New, k.Menu, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Open, k.Save, k.SaveAs, k.Quit},
		{k.Menu, k.FileMenu, k.EditMenu},
	}
}
