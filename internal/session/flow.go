package session

import (
	"fmt"

	"github.com/iw2rmb/notepad/internal/errors"
)

// ErrUnexpectedAnswer is returned when an answer does not fit the pending
// prompt (or the flow is already finished).
var ErrUnexpectedAnswer = errors.New("answer does not match the pending prompt")

// Flow runs one Action against a Session. See the package documentation.
type Flow struct {
	s   *Session
	rep Reporter

	action  Action
	prompt  Prompt
	outcome Outcome

	// resolving is set while a Save runs on behalf of the unsaved-changes
	// question; its result decides whether the action proceeds.
	resolving bool
	// savingAs is set once the save path came from the picker.
	savingAs bool
}

func (s *Session) begin(action Action, rep Reporter) *Flow {
	f := &Flow{s: s, rep: rep, action: action}
	switch action {
	case ActionNew, ActionOpen, ActionClose:
		f.resolvePending()
	case ActionSave:
		f.save()
	case ActionSaveAs:
		f.askSavePath()
	default:
		f.finish(OutcomeAborted)
	}
	return f
}

// Action returns the action this flow runs.
func (f *Flow) Action() Action { return f.action }

// Outcome returns the current outcome.
func (f *Flow) Outcome() Outcome { return f.outcome }

// Done reports whether the flow has finished (successfully or not).
func (f *Flow) Done() bool { return f.outcome != OutcomePending }

// Pending returns the prompt the flow is waiting on.
func (f *Flow) Pending() (Prompt, bool) {
	if f.outcome != OutcomePending || f.prompt.Kind == PromptNone {
		return Prompt{}, false
	}
	return f.prompt, true
}

// Choose answers PromptConfirmSave.
func (f *Flow) Choose(c Choice) error {
	switch c {
	case ChoiceSave, ChoiceDiscard, ChoiceCancel:
	default:
		return fmt.Errorf("%w: unknown choice %d", ErrUnexpectedAnswer, int(c))
	}
	if err := f.expect(PromptConfirmSave); err != nil {
		return err
	}

	f.s.logger.Debug("unsaved changes answered", "action", f.action.String(), "choice", c.String())
	switch c {
	case ChoiceSave:
		f.resolving = true
		f.save()
	case ChoiceDiscard:
		f.proceed()
	case ChoiceCancel:
		f.finish(OutcomeAborted)
	}
	return nil
}

// PickPath answers PromptOpenPath or PromptSavePath. An empty path means the
// picker was cancelled.
func (f *Flow) PickPath(path string) error {
	if _, ok := f.Pending(); !ok {
		return ErrUnexpectedAnswer
	}
	switch f.prompt.Kind {
	case PromptOpenPath:
		f.prompt = Prompt{}
		f.open(path)
		return nil
	case PromptSavePath:
		f.prompt = Prompt{}
		if path == "" {
			f.saved(false)
			return nil
		}
		f.savingAs = true
		f.write(path)
		return nil
	default:
		return ErrUnexpectedAnswer
	}
}

// Cancel answers the pending prompt the way its dialog's cancel button does.
func (f *Flow) Cancel() error {
	switch f.prompt.Kind {
	case PromptConfirmSave:
		return f.Choose(ChoiceCancel)
	case PromptOpenPath, PromptSavePath:
		return f.PickPath("")
	default:
		return ErrUnexpectedAnswer
	}
}

// expect consumes the pending prompt if it has the given kind.
func (f *Flow) expect(kind PromptKind) error {
	if f.outcome != OutcomePending || f.prompt.Kind != kind {
		return ErrUnexpectedAnswer
	}
	f.prompt = Prompt{}
	return nil
}

func (f *Flow) await(p Prompt) {
	f.prompt = p
}

func (f *Flow) finish(o Outcome) {
	f.prompt = Prompt{}
	f.outcome = o
}

// resolvePending runs the unsaved-changes protocol before New, Open and Close.
func (f *Flow) resolvePending() {
	if !f.s.Dirty() {
		f.proceed()
		return
	}
	f.await(Prompt{Kind: PromptConfirmSave})
}

// proceed runs the body of the action once pending changes are resolved.
func (f *Flow) proceed() {
	switch f.action {
	case ActionNew:
		f.s.reset()
		f.rep.ShowStatus("New document")
		f.finish(OutcomeDone)
	case ActionOpen:
		f.await(Prompt{Kind: PromptOpenPath, Filters: f.s.filters})
	default:
		f.finish(OutcomeDone)
	}
}

func (f *Flow) open(path string) {
	if path == "" {
		f.finish(OutcomeAborted)
		return
	}
	if !f.s.load(path, f.rep) {
		f.finish(OutcomeAborted)
		return
	}
	f.rep.ShowStatus(fmt.Sprintf("Opened %q", f.s.FileName()))
	f.finish(OutcomeDone)
}

func (f *Flow) save() {
	if path, ok := f.s.Path(); ok {
		f.write(path)
		return
	}
	f.askSavePath()
}

func (f *Flow) askSavePath() {
	f.await(Prompt{Kind: PromptSavePath, Filters: f.s.filters, Suggested: f.s.path})
}

func (f *Flow) write(path string) {
	ok := f.s.writeTo(path, f.rep)
	if ok {
		if f.savingAs {
			f.rep.ShowStatus(fmt.Sprintf("Saved %q", f.s.FileName()))
		} else {
			f.rep.ShowStatus("Saved")
		}
	}
	f.saved(ok)
}

// saved finishes a save attempt. When the save answered the unsaved-changes
// question, the action proceeds only if nothing is left unsaved.
func (f *Flow) saved(ok bool) {
	if f.resolving {
		f.resolving = false
		if f.s.Dirty() {
			f.finish(OutcomeAborted)
			return
		}
		f.proceed()
		return
	}
	if ok {
		f.finish(OutcomeDone)
		return
	}
	f.finish(OutcomeAborted)
}
