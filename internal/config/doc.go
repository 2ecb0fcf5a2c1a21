// Package config loads runtime configuration for docconvert.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config or DOCCONVERT_CONFIG.
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables (DOCCONVERT_*). A .env file in the working
//     directory is loaded first; variables already set in the process win.
//  4. Command-line flags the user actually set.
//
// Supported flags
//
//	-c, --config string          path to a JSON or YAML config file
//	-d, --output-dir string      directory decoded files are written to
//	    --preview-limit int      characters of payload shown by "show"
//	    --max-file-size int      largest file "open" accepts, in bytes (0 = no limit)
//	    --editor string          command used by "edit"
//	    --read-timeout duration  bound on a single file read (0 = none)
//	    --overwrite              replace existing files on save
//	    --log-backend string     slog | zap
//	    --log-format string      text | json
//	    --log-level string       debug | info | warn | error | none
//	    --log-dir string         write logs to timestamped files in this directory
//	    --log-max-files int      log files kept in --log-dir
//
// Environment
//
// Every flag has a DOCCONVERT_ counterpart in upper snake case, e.g.
// DOCCONVERT_OUTPUT_DIR or DOCCONVERT_LOG_LEVEL. EDITOR is used when
// DOCCONVERT_EDITOR is unset.
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "output_dir": "./out",
//	  "preview_limit": 1000,
//	  "read_timeout": "30s",
//	  "log_level": "debug"
//	}
package config
