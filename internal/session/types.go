package session

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Surface is the text widget the session reads and replaces. Undo, redo and
// clipboard handling stay inside the widget.
type Surface interface {
	Text() string
	SetText(text string)
	Modified() bool
	SetModified(modified bool)
}

// Store reads and writes whole documents.
type Store interface {
	Read(path string) (string, error)
	Write(path, text string) error
}

// Reporter receives the messages a flow produces. ShowError is a blocking
// message box; ShowStatus is a transient status-bar line.
type Reporter interface {
	ShowError(title, message string)
	ShowStatus(message string)
}

// Prompter answers prompts synchronously. It is the collaborator used by Run.
type Prompter interface {
	ConfirmSaveChoice() Choice
	PickOpenPath(filters []Filter) (string, bool)
	PickSavePath(filters []Filter, suggested string) (string, bool)
	ShowError(title, message string)
}

// Choice is the answer to the unsaved-changes question.
type Choice int

const (
	ChoiceSave Choice = iota
	ChoiceDiscard
	ChoiceCancel
)

func (c Choice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	case ChoiceCancel:
		return "cancel"
	default:
		return fmt.Sprintf("choice(%d)", int(c))
	}
}

// Action is a user command that runs as a Flow.
type Action int

const (
	ActionNew Action = iota
	ActionOpen
	ActionSave
	ActionSaveAs
	ActionClose
)

func (a Action) String() string {
	switch a {
	case ActionNew:
		return "new"
	case ActionOpen:
		return "open"
	case ActionSave:
		return "save"
	case ActionSaveAs:
		return "save-as"
	case ActionClose:
		return "close"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Outcome is the state of a Flow.
type Outcome int

const (
	// OutcomePending means the flow waits for an answer to its Prompt.
	OutcomePending Outcome = iota
	// OutcomeDone means the action completed; for ActionClose the window may
	// now close.
	OutcomeDone
	// OutcomeAborted means the action was cancelled or failed and the
	// session is unchanged by it.
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeDone:
		return "done"
	case OutcomeAborted:
		return "aborted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// PromptKind says which question a Flow is waiting on.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptConfirmSave
	PromptOpenPath
	PromptSavePath
)

// Prompt describes the question a pending Flow needs answered.
type Prompt struct {
	Kind      PromptKind
	Filters   []Filter
	Suggested string
}

// Filter is a named set of file name patterns offered by path pickers.
type Filter struct {
	Name     string
	Patterns []string
}

// DefaultFilters are offered by the open and save pickers, first one selected.
var DefaultFilters = []Filter{
	{Name: "Text Files", Patterns: []string{"*.txt"}},
	{Name: "All Files", Patterns: []string{"*"}},
}

func (f Filter) String() string {
	return fmt.Sprintf("%s (%s)", f.Name, strings.Join(f.Patterns, " "))
}

// Match reports whether the base name of path matches one of the patterns.
// Invalid patterns match nothing.
func (f Filter) Match(path string) bool {
	name := filepath.Base(path)
	for _, p := range f.Patterns {
		g, err := glob.Compile(p)
		if err != nil {
			continue
		}
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Extensions returns the ".ext" suffixes of simple "*.ext" patterns. It
// returns nil when any pattern matches everything.
func (f Filter) Extensions() []string {
	var out []string
	for _, p := range f.Patterns {
		if p == "*" {
			return nil
		}
		if strings.HasPrefix(p, "*.") {
			out = append(out, p[1:])
		}
	}
	return out
}
