package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/notepad/internal/session"
)

// Dialog results. Each dialog reports exactly one of these when it closes.
type (
	confirmResultMsg struct {
		choice session.Choice
	}

	// pathResultMsg carries the chosen path; empty means cancelled.
	pathResultMsg struct {
		path string
	}

	errorDismissedMsg struct{}
)

// dialog is a modal box drawn over the editor. It receives every message
// while it is shown.
type dialog interface {
	Update(msg tea.Msg) (dialog, tea.Cmd)
	View(width, height int) string
}

func resultCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// confirmDialog asks what to do with unsaved changes.
type confirmDialog struct {
	keys  KeyMap
	focus int
}

var confirmButtons = []struct {
	label  string
	hotkey string
	choice session.Choice
}{
	{"Save", "s", session.ChoiceSave},
	{"Discard", "d", session.ChoiceDiscard},
	{"Cancel", "c", session.ChoiceCancel},
}

const (
	confirmTitle   = "Unsaved Changes"
	confirmMessage = "The document has been modified. Do you want to save your changes?"
)

func newConfirmDialog(keys KeyMap) *confirmDialog {
	return &confirmDialog{keys: keys}
}

func (d *confirmDialog) Update(msg tea.Msg) (dialog, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(km, d.keys.Escape):
		return d, resultCmd(confirmResultMsg{choice: session.ChoiceCancel})
	case key.Matches(km, d.keys.Enter):
		return d, resultCmd(confirmResultMsg{choice: confirmButtons[d.focus].choice})
	case key.Matches(km, d.keys.Left, d.keys.Prev):
		d.focus = (d.focus + len(confirmButtons) - 1) % len(confirmButtons)
	case key.Matches(km, d.keys.Right, d.keys.Next):
		d.focus = (d.focus + 1) % len(confirmButtons)
	default:
		s := strings.ToLower(km.String())
		for _, b := range confirmButtons {
			if s == b.hotkey {
				return d, resultCmd(confirmResultMsg{choice: b.choice})
			}
		}
	}
	return d, nil
}

func (d *confirmDialog) View(width, _ int) string {
	buttons := make([]string, len(confirmButtons))
	for i, b := range confirmButtons {
		style := ButtonStyle
		if i == d.focus {
			style = ButtonActiveStyle
		}
		buttons[i] = style.Render(b.label)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		DialogTitleStyle.Render(confirmTitle),
		"",
		wrapText(confirmMessage, dialogTextWidth(width)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)
	return DialogStyle.Render(body)
}

// errorDialog is the blocking message box for failed reads and writes.
type errorDialog struct {
	keys    KeyMap
	title   string
	message string
}

func newErrorDialog(keys KeyMap, title, message string) *errorDialog {
	return &errorDialog{keys: keys, title: title, message: message}
}

func (d *errorDialog) Update(msg tea.Msg) (dialog, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, d.keys.Dismiss) {
		return d, resultCmd(errorDismissedMsg{})
	}
	return d, nil
}

func (d *errorDialog) View(width, _ int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		ErrorTitleStyle.Render(d.title),
		"",
		wrapText(d.message, dialogTextWidth(width)),
		"",
		ButtonActiveStyle.Render("OK"),
	)
	return ErrorDialogStyle.Render(body)
}

// dialogTextWidth keeps dialog text inside the window with room for the
// border and padding.
func dialogTextWidth(width int) int {
	w := width - 8
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

func wrapText(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
