package session

import (
	"fmt"
	"path/filepath"

	"github.com/iw2rmb/notepad"
	"github.com/iw2rmb/notepad/internal/errors"
	"github.com/iw2rmb/notepad/internal/logging"
)

// UntitledName is shown in the title of a document that has no path yet.
const UntitledName = "Untitled"

// Session tracks the document shown in the editor. It is not safe for
// concurrent use; all calls happen on the UI loop.
type Session struct {
	surface  Surface
	store    Store
	reporter Reporter
	logger   *logging.Logger
	filters  []Filter

	path string
}

// Option configures a Session.
type Option func(*Session)

// WithReporter routes error and status messages of Begin flows to r.
func WithReporter(r Reporter) Option {
	return func(s *Session) { s.reporter = r }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithFilters replaces DefaultFilters for the path pickers.
func WithFilters(filters ...Filter) Option {
	return func(s *Session) { s.filters = filters }
}

// New returns an untitled session over surface. The surface content is left
// as is and marked clean.
func New(surface Surface, store Store, opts ...Option) *Session {
	s := &Session{
		surface:  surface,
		store:    store,
		reporter: nopReporter{},
		logger:   logging.NopLogger(),
		filters:  DefaultFilters,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("session")
	surface.SetModified(false)
	return s
}

// Path returns the document path; ok is false for an untitled document.
func (s *Session) Path() (path string, ok bool) {
	return s.path, s.path != ""
}

// Dirty reports whether the surface holds unsaved changes.
func (s *Session) Dirty() bool {
	return s.surface.Modified()
}

// FileName is the base name of the path, or UntitledName.
func (s *Session) FileName() string {
	if s.path == "" {
		return UntitledName
	}
	return filepath.Base(s.path)
}

// Title is the window title: file name, a "*" when dirty, and the app name.
func (s *Session) Title() string {
	marker := ""
	if s.Dirty() {
		marker = "*"
	}
	return fmt.Sprintf("%s%s - %s", s.FileName(), marker, notepad.AppName)
}

// Filters returns the filters offered by the path pickers.
func (s *Session) Filters() []Filter {
	return s.filters
}

// Begin starts action and reports through the session Reporter.
func (s *Session) Begin(action Action) *Flow {
	return s.begin(action, s.reporter)
}

// Run drives action to completion, asking p whenever the flow needs an
// answer. Errors go to p.ShowError; status lines go to the session Reporter.
func (s *Session) Run(action Action, p Prompter) Outcome {
	f := s.begin(action, promptReporter{p: p, status: s.reporter})
	for !f.Done() {
		prompt, ok := f.Pending()
		if !ok {
			break
		}
		switch prompt.Kind {
		case PromptConfirmSave:
			_ = f.Choose(p.ConfirmSaveChoice())
		case PromptOpenPath:
			path, ok := p.PickOpenPath(prompt.Filters)
			if !ok {
				path = ""
			}
			_ = f.PickPath(path)
		case PromptSavePath:
			path, ok := p.PickSavePath(prompt.Filters, prompt.Suggested)
			if !ok {
				path = ""
			}
			_ = f.PickPath(path)
		}
	}
	return f.Outcome()
}

func (s *Session) reset() {
	s.surface.SetText("")
	s.surface.SetModified(false)
	s.path = ""
	s.logger.Info("new document")
}

func (s *Session) load(path string, rep Reporter) bool {
	text, err := s.store.Read(path)
	if err != nil {
		s.fail(err, path, rep)
		return false
	}

	s.surface.SetText(text)
	s.surface.SetModified(false)
	s.path = path
	s.logger.Info("document opened", "path", path, "bytes", len(text))
	return true
}

func (s *Session) writeTo(path string, rep Reporter) bool {
	text := s.surface.Text()
	if err := s.store.Write(path, text); err != nil {
		s.fail(err, path, rep)
		return false
	}

	s.surface.SetModified(false)
	s.path = path
	s.logger.Info("document saved", "path", path, "bytes", len(text))
	return true
}

func (s *Session) fail(err error, path string, rep Reporter) {
	s.logger.Warn("file operation failed", "path", path, "error", err)

	var fe *errors.FileError
	if errors.As(err, &fe) {
		rep.ShowError(fe.Title(), fe.UserMessage())
		return
	}
	rep.ShowError("Error", err.Error())
}

type nopReporter struct{}

func (nopReporter) ShowError(string, string) {}
func (nopReporter) ShowStatus(string)        {}

type promptReporter struct {
	p      Prompter
	status Reporter
}

func (r promptReporter) ShowError(title, message string) { r.p.ShowError(title, message) }
func (r promptReporter) ShowStatus(message string)       { r.status.ShowStatus(message) }
