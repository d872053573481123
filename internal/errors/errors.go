// Package errors defines the error kinds surfaced by the notepad document
// session and helpers to turn them into user-facing messages.
//
// # Error Kinds
//
// Only two failures reach the user:
//   - OpenFailure: a file could not be read (missing, unreadable, permission).
//   - WriteFailure: a file could not be written (permission, disk, bad path).
//
// Both are represented by *FileError and can be matched with the sentinels:
//
//	if errors.Is(err, errors.ErrOpenFailure) { ... }
//
//	var fe *errors.FileError
//	if errors.As(err, &fe) {
//		prompt.ShowError(fe.Title(), fe.UserMessage())
//	}
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// Re-export standard library functions so callers only import this package.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

var (
	// ErrOpenFailure matches every FileError of KindOpen.
	ErrOpenFailure = New("open failure")
	// ErrWriteFailure matches every FileError of KindWrite.
	ErrWriteFailure = New("write failure")
)

// Kind identifies which file operation failed.
type Kind int

const (
	KindOpen Kind = iota
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// FileError reports a failed read or write of a document file.
type FileError struct {
	Kind Kind
	Path string
	Err  error
}

// OpenFailure wraps err as a failure to read path.
func OpenFailure(path string, err error) *FileError {
	return &FileError{Kind: KindOpen, Path: path, Err: err}
}

// WriteFailure wraps err as a failure to write path.
func WriteFailure(path string, err error) *FileError {
	return &FileError{Kind: KindWrite, Path: path, Err: err}
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Is matches the kind sentinels in addition to the wrapped cause.
func (e *FileError) Is(target error) bool {
	switch target {
	case ErrOpenFailure:
		return e.Kind == KindOpen
	case ErrWriteFailure:
		return e.Kind == KindWrite
	}
	return false
}

// Title is the heading of the message box that reports the failure.
func (e *FileError) Title() string { return "Error" }

// Reason returns the OS error text without the path prefix added by
// *fs.PathError.
func (e *FileError) Reason() string {
	if e.Err == nil {
		return "Unknown error"
	}
	var pe *fs.PathError
	if As(e.Err, &pe) && pe.Err != nil {
		return pe.Err.Error()
	}
	return e.Err.Error()
}

// UserMessage renders the body of the message box, naming the file by its
// base name.
func (e *FileError) UserMessage() string {
	name := filepath.Base(e.Path)
	switch e.Kind {
	case KindWrite:
		return fmt.Sprintf("Could not write to file %q: %s", name, e.Reason())
	default:
		return fmt.Sprintf("Could not open file %q: %s", name, e.Reason())
	}
}
