package config

import (
	"github.com/spf13/pflag"
)

// Flags binds the configuration flags to a pflag.FlagSet and remembers their
// values until Load is called.
type Flags struct {
	fs         *pflag.FlagSet
	configFile string
	values     Config
}

// RegisterFlags adds the configuration flags to fs. Typically fs is a cobra
// command's PersistentFlags().
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	var d Config
	d.LoadDefaults()

	fs.StringVarP(&f.configFile, "config", "c", "", "path to a JSON or YAML config file")
	fs.StringVarP(&f.values.OutputDir, "output-dir", "d", d.OutputDir, "directory decoded files are written to")
	fs.IntVar(&f.values.PreviewLimit, "preview-limit", d.PreviewLimit, "characters of payload shown by show")
	fs.Int64Var(&f.values.MaxFileSize, "max-file-size", d.MaxFileSize, "largest file open accepts, in bytes (0 = no limit)")
	fs.StringVar(&f.values.Editor, "editor", d.Editor, "command used by edit")
	fs.DurationVar(&f.values.ReadTimeout, "read-timeout", d.ReadTimeout, "bound on a single file read (0 = none)")
	fs.BoolVar(&f.values.Overwrite, "overwrite", d.Overwrite, "replace existing files on save")
	fs.StringVar(&f.values.LogBackend, "log-backend", d.LogBackend, "log backend: slog or zap")
	fs.StringVar(&f.values.LogFormat, "log-format", d.LogFormat, "log format: text or json")
	fs.StringVar(&f.values.LogLevel, "log-level", d.LogLevel, "log level: debug, info, warn, error or none")
	fs.StringVar(&f.values.LogDir, "log-dir", d.LogDir, "write logs to timestamped files in this directory")
	fs.IntVar(&f.values.LogMaxFiles, "log-max-files", d.LogMaxFiles, "log files kept in --log-dir")

	return f
}

// ConfigFile returns the -c/--config value.
func (f *Flags) ConfigFile() string {
	return f.configFile
}

// apply copies the flags the user set onto cfg.
func (f *Flags) apply(cfg *Config) {
	set := map[string]func(){
		"output-dir":    func() { cfg.OutputDir = f.values.OutputDir },
		"preview-limit": func() { cfg.PreviewLimit = f.values.PreviewLimit },
		"max-file-size": func() { cfg.MaxFileSize = f.values.MaxFileSize },
		"editor":        func() { cfg.Editor = f.values.Editor },
		"read-timeout":  func() { cfg.ReadTimeout = f.values.ReadTimeout },
		"overwrite":     func() { cfg.Overwrite = f.values.Overwrite },
		"log-backend":   func() { cfg.LogBackend = f.values.LogBackend },
		"log-format":    func() { cfg.LogFormat = f.values.LogFormat },
		"log-level":     func() { cfg.LogLevel = f.values.LogLevel },
		"log-dir":       func() { cfg.LogDir = f.values.LogDir },
		"log-max-files": func() { cfg.LogMaxFiles = f.values.LogMaxFiles },
	}

	// cobra parses its merged set, not fs; the *Flag values are shared.
	f.fs.VisitAll(func(fl *pflag.Flag) {
		if !fl.Changed {
			return
		}
		if fn, ok := set[fl.Name]; ok {
			fn()
		}
	})
}
