// Package filestore reads and writes whole documents as UTF-8 text.
//
// Files are handled in text mode: reading drops a leading byte order mark,
// replaces invalid UTF-8 with U+FFFD and normalizes CRLF and lone CR line
// endings to LF. Writing emits plain UTF-8 with no BOM.
package filestore

import (
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"

	"github.com/iw2rmb/notepad/internal/errors"
)

// DefaultPerm is the mode used when a write creates a new file.
const DefaultPerm os.FileMode = 0o644

var errIsDir = errors.New("is a directory")

// Store performs document I/O on an afero filesystem.
type Store struct {
	fs   afero.Fs
	perm os.FileMode
}

// New returns a Store backed by fsys.
func New(fsys afero.Fs) *Store {
	return &Store{fs: fsys, perm: DefaultPerm}
}

// NewOS returns a Store backed by the operating system filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Read returns the decoded contents of path. Failures are *errors.FileError
// of kind KindOpen.
func (s *Store) Read(path string) (string, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return "", errors.OpenFailure(path, err)
	}
	if info.IsDir() {
		return "", errors.OpenFailure(path, &fs.PathError{Op: "open", Path: path, Err: errIsDir})
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", errors.OpenFailure(path, err)
	}
	text, err := Decode(data)
	if err != nil {
		return "", errors.OpenFailure(path, err)
	}
	return text, nil
}

// Write replaces the contents of path with text encoded as UTF-8, creating
// the file if needed. Failures are *errors.FileError of kind KindWrite.
func (s *Store) Write(path, text string) error {
	data, err := Encode(text)
	if err != nil {
		return errors.WriteFailure(path, err)
	}
	if err := afero.WriteFile(s.fs, path, data, s.perm); err != nil {
		return errors.WriteFailure(path, err)
	}
	return nil
}

// Decode converts raw file bytes into editor text.
func Decode(data []byte) (string, error) {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return normalizeNewlines(string(out)), nil
}

// Encode converts editor text into file bytes.
func Encode(text string) ([]byte, error) {
	return unicode.UTF8.NewEncoder().Bytes([]byte(text))
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
