package transfer

import "os"

// Options configures a Boundary.
type Options struct {
	FileMode  os.FileMode // permission bits for written artifacts
	DirMode   os.FileMode // permission bits for a created output directory
	Overwrite bool        // replace an existing file with the same name
}

// OptionFunc is a functional option for New.
type OptionFunc func(opts *Options)

// WithFileMode sets the permission bits of written artifacts. Default 0644.
func WithFileMode(mode os.FileMode) OptionFunc {
	return func(opts *Options) {
		opts.FileMode = mode
	}
}

// WithDirMode sets the permission bits used when the output directory has to
// be created. Default 0755.
func WithDirMode(mode os.FileMode) OptionFunc {
	return func(opts *Options) {
		opts.DirMode = mode
	}
}

// WithOverwrite allows Materialize to replace an existing file.
func WithOverwrite(overwrite bool) OptionFunc {
	return func(opts *Options) {
		opts.Overwrite = overwrite
	}
}

var defaultOpts = Options{
	FileMode: 0o644,
	DirMode:  0o755,
}
