package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "DOCCONVERT_"

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// loadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays cfg with DOCCONVERT_* variables.
func parseEnv(cfg *Config, lookup lookupFunc) error {
	get := func(name string) (string, bool) {
		return lookup(envPrefix + name)
	}

	if v, ok := get("OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if err := envInt(get, "PREVIEW_LIMIT", &cfg.PreviewLimit); err != nil {
		return err
	}
	if v, ok := get("MAX_FILE_SIZE"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sMAX_FILE_SIZE: %w", envPrefix, err)
		}
		cfg.MaxFileSize = n
	}

	if v, ok := lookup("EDITOR"); ok && v != "" {
		cfg.Editor = v
	}
	if v, ok := get("EDITOR"); ok && v != "" {
		cfg.Editor = v
	}

	if v, ok := get("READ_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sREAD_TIMEOUT: %w", envPrefix, err)
		}
		cfg.ReadTimeout = d
	}
	if v, ok := get("OVERWRITE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sOVERWRITE: %w", envPrefix, err)
		}
		cfg.Overwrite = b
	}

	if v, ok := get("LOG_BACKEND"); ok {
		cfg.LogBackend = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("LOG_DIR"); ok {
		cfg.LogDir = v
	}
	return envInt(get, "LOG_MAX_FILES", &cfg.LogMaxFiles)
}

func envInt(get func(string) (string, bool), name string, dst *int) error {
	v, ok := get(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", envPrefix, name, err)
	}
	*dst = n
	return nil
}
