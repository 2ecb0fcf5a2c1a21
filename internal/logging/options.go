package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Backend selects the logging implementation.
type Backend string

const (
	BackendSlog Backend = "slog"
	BackendZap  Backend = "zap"
)

// Format selects the record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Level is the minimum severity that gets written.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelNone  Level = "none"
)

// ParseLevel validates a level name.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError, LevelNone:
		return l, nil
	default:
		return "", fmt.Errorf("unknown log level: %s", s)
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError, LevelNone:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError, LevelNone:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Options configures New.
type Options struct {
	Backend Backend
	Format  Format
	Level   Level

	// Dir, when set, sends records to a timestamped file in Dir instead of
	// Output and keeps at most MaxFiles files there.
	Dir      string
	MaxFiles int

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a Logger from opts. The returned close function releases the
// log file, if one was opened, and flushes buffered backends.
func New(opts Options) (Logger, func() error, error) {
	raw := opts.Level
	if raw == "" {
		raw = LevelInfo
	}
	level, err := ParseLevel(string(raw))
	if err != nil {
		return nil, nil, err
	}

	w := opts.Output
	if w == nil {
		w = os.Stderr
	}

	closeFn := func() error { return nil }
	if opts.Dir != "" {
		f, err := SetupLogFile(opts.Dir, opts.MaxFiles)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = f.Close
	}

	switch opts.Backend {
	case BackendZap:
		z := newZap(w, opts.Format, level)
		fileClose := closeFn
		closeFn = func() error {
			_ = z.Sync()
			return fileClose()
		}
		return z, closeFn, nil
	case BackendSlog, "":
		return newSlog(w, opts.Format, level), closeFn, nil
	default:
		_ = closeFn()
		return nil, nil, fmt.Errorf("unknown log backend: %s", opts.Backend)
	}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return newSlog(io.Discard, FormatText, LevelNone)
}
