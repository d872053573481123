package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/buffer"
)

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestMouse_ClickAndDragSelects(t *testing.T) {
	m := New(Config{Text: "hello\nworld"})
	m = m.SetSize(10, 3)

	m, _ = m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 1))
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 1, GraphemeCol: 2}) {
		t.Fatalf("cursor after click: got %v, want %v", got, buffer.Pos{Row: 1, GraphemeCol: 2})
	}

	m, _ = m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 4, 0))
	if got := m.buf.SelectedText(); got != "o\nwo" {
		t.Fatalf("selection after drag: got %q, want %q", got, "o\nwo")
	}

	m, _ = m.Update(mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 4, 0))
	m, _ = m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonNone, 0, 0))
	if got := m.buf.SelectedText(); got != "o\nwo" {
		t.Fatalf("selection after release: got %q, want %q", got, "o\nwo")
	}
}

func TestMouse_ShiftClickExtends(t *testing.T) {
	m := New(Config{Text: "abcdef"})
	m = m.SetSize(10, 1)

	m, _ = m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 1, 0))
	m, _ = m.Update(mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 1, 0))

	shift := mouse(tea.MouseActionPress, tea.MouseButtonLeft, 4, 0)
	shift.Shift = true
	m, _ = m.Update(shift)
	if got := m.buf.SelectedText(); got != "bcd" {
		t.Fatalf("selection after shift+click: got %q, want %q", got, "bcd")
	}
}

func TestMouse_WheelScrollsWithoutMovingCursor(t *testing.T) {
	m := New(Config{Text: "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nl10"})
	m = m.SetSize(10, 3)

	m, _ = m.Update(mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 0, 0))
	if got := viewLines(m)[0]; got != "l4" {
		t.Fatalf("first row after wheel: got %q, want %q", got, "l4")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor after wheel: got %v, want %v", got, buffer.Pos{})
	}
}
