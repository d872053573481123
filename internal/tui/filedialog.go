package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/notepad/internal/session"
)

// filterCycle is the filter selection shared by the open and save dialogs.
type filterCycle struct {
	filters []session.Filter
	index   int
}

func (f *filterCycle) next() {
	if len(f.filters) > 0 {
		f.index = (f.index + 1) % len(f.filters)
	}
}

func (f filterCycle) current() (session.Filter, bool) {
	if len(f.filters) == 0 {
		return session.Filter{}, false
	}
	return f.filters[f.index], true
}

func (f filterCycle) label() string {
	cur, ok := f.current()
	if !ok {
		return ""
	}
	return "Filter: " + cur.String()
}

// openDialog picks an existing file with the bubbles filepicker.
type openDialog struct {
	keys    KeyMap
	picker  filepicker.Model
	filters filterCycle
	notice  string
}

func newOpenDialog(keys KeyMap, dir string, filters []session.Filter, showHidden bool, height int) (*openDialog, tea.Cmd) {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.ShowHidden = showHidden
	fp.AutoHeight = false
	fp.SetHeight(pickerHeight(height))
	// esc cancels the dialog instead of walking up a directory.
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "back"),
	)

	d := &openDialog{keys: keys, picker: fp, filters: filterCycle{filters: filters}}
	d.applyFilter()
	return d, fp.Init()
}

func pickerHeight(height int) int {
	h := height - 10
	if h < 3 {
		return 3
	}
	return h
}

func (d *openDialog) applyFilter() {
	cur, ok := d.filters.current()
	if !ok {
		d.picker.AllowedTypes = nil
		return
	}
	d.picker.AllowedTypes = cur.Extensions()
}

func (d *openDialog) Update(msg tea.Msg) (dialog, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, d.keys.Escape):
			return d, resultCmd(pathResultMsg{})
		case key.Matches(km, d.keys.ToggleFilter):
			d.filters.next()
			d.applyFilter()
			d.notice = ""
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)

	if ok, path := d.picker.DidSelectFile(msg); ok {
		// AllowedTypes only covers "*.ext" patterns; Match checks the rest.
		if cur, has := d.filters.current(); !has || cur.Match(path) {
			return d, resultCmd(pathResultMsg{path: path})
		}
		d.notice = filterNotice(path)
	}
	if ok, path := d.picker.DidSelectDisabledFile(msg); ok {
		d.notice = filterNotice(path)
	}
	return d, cmd
}

func filterNotice(path string) string {
	return fmt.Sprintf("%s does not match the filter (ctrl+t to change)", filepath.Base(path))
}

func (d *openDialog) View(width, height int) string {
	parts := []string{
		DialogTitleStyle.Render("Open File"),
		HintStyle.Render(d.picker.CurrentDirectory),
		"",
		d.picker.View(),
		HintStyle.Render(d.filters.label()),
	}
	if d.notice != "" {
		parts = append(parts, ErrorTitleStyle.Render(d.notice))
	}
	parts = append(parts, HintStyle.Render("enter open • ctrl+t filter • esc cancel"))
	return DialogStyle.Width(minInt(width-4, 72)).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// saveDialog asks for a destination path with a text input.
type saveDialog struct {
	keys    KeyMap
	input   textinput.Model
	filters filterCycle
	workDir string
}

func newSaveDialog(keys KeyMap, suggested, workDir string, filters []session.Filter) (*saveDialog, tea.Cmd) {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "file name"
	ti.CharLimit = 4096
	ti.SetValue(suggested)
	ti.CursorEnd()
	cmd := ti.Focus()

	return &saveDialog{keys: keys, input: ti, filters: filterCycle{filters: filters}, workDir: workDir}, cmd
}

func (d *saveDialog) Update(msg tea.Msg) (dialog, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, d.keys.Escape):
			return d, resultCmd(pathResultMsg{})
		case key.Matches(km, d.keys.Enter):
			path := strings.TrimSpace(d.input.Value())
			if path == "" {
				return d, nil
			}
			return d, resultCmd(pathResultMsg{path: resolvePath(path, d.workDir)})
		case key.Matches(km, d.keys.ToggleFilter):
			d.filters.next()
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *saveDialog) View(width, _ int) string {
	w := minInt(width-4, 72)
	d.input.Width = maxInt(w-10, 10)
	return DialogStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		DialogTitleStyle.Render("Save File"),
		"",
		d.input.View(),
		"",
		HintStyle.Render(d.filters.label()),
		HintStyle.Render("enter save • ctrl+t filter • esc cancel"),
	))
}

// resolvePath expands a leading "~/" and makes relative paths absolute
// against dir.
func resolvePath(path, dir string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	return filepath.Clean(path)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
