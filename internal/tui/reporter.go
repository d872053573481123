package tui

// reporter collects what a session flow reports while it runs inside
// Update; the model drains it after every flow step.
type reporter struct {
	errors   []reportedError
	statuses []string
}

type reportedError struct {
	title   string
	message string
}

func (r *reporter) ShowError(title, message string) {
	r.errors = append(r.errors, reportedError{title: title, message: message})
}

func (r *reporter) ShowStatus(message string) {
	r.statuses = append(r.statuses, message)
}

func (r *reporter) takeErrors() []reportedError {
	out := r.errors
	r.errors = nil
	return out
}

func (r *reporter) takeStatuses() []string {
	out := r.statuses
	r.statuses = nil
	return out
}
