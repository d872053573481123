package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/buffer"
)

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = press(m, keyMsg(tea.KeyRight), runes("X"))
	if got := m.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 2})
	}

	m, _ = press(m, keyMsg(tea.KeyBackspace))
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}

	m, _ = press(m, keyMsg(tea.KeyDelete))
	if got := m.Text(); got != "a" {
		t.Fatalf("text after delete: got %q, want %q", got, "a")
	}

	m, _ = press(m, keyMsg(tea.KeyEnter), keyMsg(tea.KeyTab), keyMsg(tea.KeySpace))
	if got := m.Text(); got != "a\n\t " {
		t.Fatalf("text after enter/tab/space: got %q, want %q", got, "a\n\t ")
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	clip := &memClipboard{s: "zz"}
	m := New(Config{Text: "ab", ReadOnly: true, Clipboard: clip})

	m, _ = press(m, keyMsg(tea.KeyRight))
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 1})
	}

	m, _ = press(m, runes("X"), keyMsg(tea.KeyBackspace), keyMsg(tea.KeyEnter), keyMsg(tea.KeyCtrlV))
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after edits: got %q, want %q", got, "ab")
	}

	m, _ = press(m, keyMsg(tea.KeyCtrlA), keyMsg(tea.KeyCtrlX))
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after cut: got %q, want %q", got, "ab")
	}
	if clip.s != "ab" {
		t.Fatalf("clipboard after read-only cut: got %q, want %q", clip.s, "ab")
	}
}

func TestUpdate_UnfocusedIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()

	m, _ = press(m, runes("X"))
	if got := m.Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
}

func TestUpdate_ClipboardKeys(t *testing.T) {
	clip := &memClipboard{}
	m := New(Config{Text: "hello", Clipboard: clip})

	m, _ = press(m, keyMsg(tea.KeyCtrlA), keyMsg(tea.KeyCtrlC))
	if clip.s != "hello" {
		t.Fatalf("clipboard after copy: got %q, want %q", clip.s, "hello")
	}
	if got := m.Text(); got != "hello" {
		t.Fatalf("text after copy: got %q, want %q", got, "hello")
	}

	m, _ = press(m, keyMsg(tea.KeyCtrlX))
	if got := m.Text(); got != "" {
		t.Fatalf("text after cut: got %q, want %q", got, "")
	}

	m, _ = press(m, keyMsg(tea.KeyCtrlV), keyMsg(tea.KeyCtrlV))
	if got := m.Text(); got != "hellohello" {
		t.Fatalf("text after paste: got %q, want %q", got, "hellohello")
	}
}

func TestUpdate_CutWithoutSelectionKeepsClipboard(t *testing.T) {
	clip := &memClipboard{s: "keep"}
	m := New(Config{Text: "abc", Clipboard: clip})

	m, _ = press(m, keyMsg(tea.KeyCtrlX))
	if got := m.Text(); got != "abc" {
		t.Fatalf("text: got %q, want %q", got, "abc")
	}
	if clip.s != "keep" {
		t.Fatalf("clipboard: got %q, want %q", clip.s, "keep")
	}
}

func TestUpdate_PasteNormalizesNewlines(t *testing.T) {
	clip := &memClipboard{s: "a\r\nb\rc"}
	m := New(Config{Clipboard: clip})

	m, _ = press(m, keyMsg(tea.KeyCtrlV))
	if got := m.Text(); got != "a\nb\nc" {
		t.Fatalf("text after paste: got %q, want %q", got, "a\nb\nc")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("\r\nx"), Paste: true})
	if got := m.Text(); got != "a\nb\nc\nx" {
		t.Fatalf("text after bracketed paste: got %q, want %q", got, "a\nb\nc\nx")
	}
}

func TestUpdate_UndoRedoKeys(t *testing.T) {
	m := New(Config{})

	m, _ = press(m, runes("x"), runes("y"))
	m, _ = press(m, keyMsg(tea.KeyCtrlZ))
	if got := m.Text(); got != "x" {
		t.Fatalf("text after undo: got %q, want %q", got, "x")
	}
	if !m.CanRedo() {
		t.Fatalf("CanRedo after undo: got false, want true")
	}

	m, _ = press(m, keyMsg(tea.KeyCtrlY))
	if got := m.Text(); got != "xy" {
		t.Fatalf("text after redo: got %q, want %q", got, "xy")
	}
}

func TestUpdate_VerticalMovement(t *testing.T) {
	m := New(Config{Text: "abc\nd\nefgh"})
	m = m.SetSize(10, 3)

	m, _ = press(m, keyMsg(tea.KeyEnd), keyMsg(tea.KeyDown))
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 1, GraphemeCol: 1}) {
		t.Fatalf("cursor after down: got %v, want %v", got, buffer.Pos{Row: 1, GraphemeCol: 1})
	}

	m, _ = press(m, keyMsg(tea.KeyDown))
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 2, GraphemeCol: 1}) {
		t.Fatalf("cursor after second down: got %v, want %v", got, buffer.Pos{Row: 2, GraphemeCol: 1})
	}

	m, _ = press(m, keyMsg(tea.KeyDown))
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 2, GraphemeCol: 4}) {
		t.Fatalf("cursor after down on last row: got %v, want %v", got, buffer.Pos{Row: 2, GraphemeCol: 4})
	}

	m, _ = press(m, keyMsg(tea.KeyCtrlHome), keyMsg(tea.KeyRight), keyMsg(tea.KeyUp))
	if got := m.buf.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor after up on first row: got %v, want %v", got, buffer.Pos{})
	}
}

func TestUpdate_VerticalMovementInWrappedLine(t *testing.T) {
	m := New(Config{Text: "abcdefgh", WrapMode: WrapGrapheme})
	m = m.SetSize(4, 3)

	m, _ = press(m, keyMsg(tea.KeyRight), keyMsg(tea.KeyDown))
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 5}) {
		t.Fatalf("cursor after down: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 5})
	}

	m, _ = press(m, keyMsg(tea.KeyUp))
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("cursor after up: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 1})
	}
}

func TestUpdate_SelectionKeys(t *testing.T) {
	m := New(Config{Text: "one two"})

	m, _ = press(m, keyMsg(tea.KeyShiftRight), keyMsg(tea.KeyShiftRight))
	r, ok := m.buf.Selection()
	if !ok || r != (buffer.Range{End: buffer.Pos{GraphemeCol: 2}}) {
		t.Fatalf("selection: got %v/%v, want [0,2)", r, ok)
	}

	m, _ = press(m, keyMsg(tea.KeyShiftEnd))
	if got := m.buf.SelectedText(); got != "one two" {
		t.Fatalf("selected after shift+end: got %q, want %q", got, "one two")
	}

	m, _ = press(m, keyMsg(tea.KeyLeft))
	if m.CopyAvailable() {
		t.Fatalf("CopyAvailable after collapse: got true, want false")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor after collapse: got %v, want %v", got, buffer.Pos{})
	}
}

func TestUpdate_PageDown(t *testing.T) {
	m := New(Config{Text: "1\n2\n3\n4\n5\n6\n7"})
	m = m.SetSize(5, 3)

	m, _ = press(m, keyMsg(tea.KeyPgDown))
	if got := m.buf.Cursor().Row; got != 2 {
		t.Fatalf("row after pgdown: got %d, want %d", got, 2)
	}

	m, _ = press(m, keyMsg(tea.KeyPgUp))
	if got := m.buf.Cursor().Row; got != 0 {
		t.Fatalf("row after pgup: got %d, want %d", got, 0)
	}
}
