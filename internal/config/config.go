package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrijs2005/docconvert/internal/logging"
)

// Config holds runtime settings for the docconvert CLI.
type Config struct {
	OutputDir    string
	PreviewLimit int
	MaxFileSize  int64 // bytes; 0 disables the check
	Editor       string
	ReadTimeout  time.Duration // 0 disables the bound
	Overwrite    bool

	LogBackend  string
	LogFormat   string
	LogLevel    string
	LogDir      string
	LogMaxFiles int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.OutputDir = "."
	c.PreviewLimit = 1000
	c.MaxFileSize = 50 << 20
	c.Editor = "vi"
	c.ReadTimeout = 0
	c.Overwrite = false

	c.LogBackend = string(logging.BackendSlog)
	c.LogFormat = string(logging.FormatText)
	c.LogLevel = string(logging.LevelWarn)
	c.LogDir = ""
	c.LogMaxFiles = 10
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.PreviewLimit, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxFileSize, validation.Min(0)),
		validation.Field(&c.Editor, validation.Required),
		validation.Field(&c.ReadTimeout, validation.Min(0)),
		validation.Field(&c.LogBackend, validation.Required,
			validation.In(string(logging.BackendSlog), string(logging.BackendZap))),
		validation.Field(&c.LogFormat, validation.Required,
			validation.In(string(logging.FormatText), string(logging.FormatJSON))),
		validation.Field(&c.LogLevel, validation.Required,
			validation.In(string(logging.LevelDebug), string(logging.LevelInfo),
				string(logging.LevelWarn), string(logging.LevelError), string(logging.LevelNone))),
		validation.Field(&c.LogMaxFiles, validation.Min(0)),
	)
}

// LoggingOptions translates the log settings for logging.New.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Backend:  logging.Backend(c.LogBackend),
		Format:   logging.Format(c.LogFormat),
		Level:    logging.Level(c.LogLevel),
		Dir:      c.LogDir,
		MaxFiles: c.LogMaxFiles,
	}
}
