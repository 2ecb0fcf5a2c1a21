package pipeline

import (
	"io"
	"io/fs"
	"time"
)

type fakeInfo struct {
	size int64
	mod  time.Time
}

func (f fakeInfo) Name() string       { return "fake" }
func (f fakeInfo) Size() int64        { return f.size }
func (f fakeInfo) Mode() fs.FileMode  { return 0o644 }
func (f fakeInfo) ModTime() time.Time { return f.mod }
func (f fakeInfo) IsDir() bool        { return false }
func (f fakeInfo) Sys() any           { return nil }

// failAfter yields data once and then fails with err.
type failAfter struct {
	data []byte
	err  error
	done bool
}

func (f *failAfter) Read(p []byte) (int, error) {
	if f.done {
		return 0, f.err
	}
	f.done = true
	n := copy(p, f.data)
	return n, nil
}

var _ io.Reader = (*failAfter)(nil)
