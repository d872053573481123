package errors

import (
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "open", KindOpen.String())
	assert.Equal(t, "write", KindWrite.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestFileError_MatchesSentinels(t *testing.T) {
	open := OpenFailure("/tmp/a.txt", fs.ErrNotExist)
	write := WriteFailure("/tmp/a.txt", fs.ErrPermission)

	assert.True(t, Is(open, ErrOpenFailure))
	assert.False(t, Is(open, ErrWriteFailure))
	assert.True(t, Is(open, fs.ErrNotExist), "cause stays reachable")

	assert.True(t, Is(write, ErrWriteFailure))
	assert.False(t, Is(write, ErrOpenFailure))

	var fe *FileError
	wrapped := Join(New("context"), write)
	assert.True(t, As(wrapped, &fe))
	assert.Equal(t, KindWrite, fe.Kind)
}

func TestFileError_UserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *FileError
		want string
	}{
		{
			name: "open strips path error prefix",
			err: OpenFailure("/home/u/notes/a.txt", &fs.PathError{
				Op: "open", Path: "/home/u/notes/a.txt", Err: syscall.ENOENT,
			}),
			want: `Could not open file "a.txt": no such file or directory`,
		},
		{
			name: "write",
			err: WriteFailure("/root/b.txt", &fs.PathError{
				Op: "open", Path: "/root/b.txt", Err: syscall.EACCES,
			}),
			want: `Could not write to file "b.txt": permission denied`,
		},
		{
			name: "plain cause",
			err:  WriteFailure("c.txt", New("disk full")),
			want: `Could not write to file "c.txt": disk full`,
		},
		{
			name: "nil cause",
			err:  OpenFailure("d.txt", nil),
			want: `Could not open file "d.txt": Unknown error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.UserMessage())
			assert.Equal(t, "Error", tt.err.Title())
		})
	}
}

func TestFileError_Error(t *testing.T) {
	err := OpenFailure("/tmp/x", New("boom"))
	assert.Equal(t, "open /tmp/x: boom", err.Error())
}
