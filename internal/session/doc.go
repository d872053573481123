// Package session implements the notepad document session: the current file
// path, the dirty state read from the text surface, and the pending-save
// protocol that guards New, Open and Exit.
//
// # Flows
//
// Every user action runs as a Flow. A Flow is a small resumable state
// machine: it performs as much of the action as it can, and stops whenever
// it needs an answer from the user (save/discard/cancel, an open path, a
// save path). The caller answers with Choose or PickPath and reads the
// next Prompt until the Flow reports OutcomeDone or OutcomeAborted:
//
//	f := s.Begin(session.ActionOpen)
//	for {
//		p, ok := f.Pending()
//		if !ok {
//			break
//		}
//		// show a dialog for p, then f.Choose(...) or f.PickPath(...)
//	}
//
// Event-driven UIs keep the Flow between events; synchronous callers use
// Run with a blocking Prompter.
//
// # Failures
//
// Read and write failures never escape a Flow. They are reported through
// the Reporter as a blocking message and leave the session exactly as it
// was before the attempt.
package session
