package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/docconvert/internal/timex"
)

// FileConfig is a DTO used only for decoding config files. Pointer fields
// distinguish "absent" from zero so a file overlays just what it names.
type FileConfig struct {
	OutputDir    *string         `json:"output_dir" yaml:"output_dir"`
	PreviewLimit *int            `json:"preview_limit" yaml:"preview_limit"`
	MaxFileSize  *int64          `json:"max_file_size" yaml:"max_file_size"`
	Editor       *string         `json:"editor" yaml:"editor"`
	ReadTimeout  *timex.Duration `json:"read_timeout" yaml:"read_timeout"`
	Overwrite    *bool           `json:"overwrite" yaml:"overwrite"`

	LogBackend  *string `json:"log_backend" yaml:"log_backend"`
	LogFormat   *string `json:"log_format" yaml:"log_format"`
	LogLevel    *string `json:"log_level" yaml:"log_level"`
	LogDir      *string `json:"log_dir" yaml:"log_dir"`
	LogMaxFiles *int    `json:"log_max_files" yaml:"log_max_files"`
}

// parseFile overlays cfg with the values found in path.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setIf(&cfg.OutputDir, fc.OutputDir)
	setIf(&cfg.PreviewLimit, fc.PreviewLimit)
	setIf(&cfg.MaxFileSize, fc.MaxFileSize)
	setIf(&cfg.Editor, fc.Editor)
	if fc.ReadTimeout != nil {
		cfg.ReadTimeout = fc.ReadTimeout.Duration
	}
	setIf(&cfg.Overwrite, fc.Overwrite)
	setIf(&cfg.LogBackend, fc.LogBackend)
	setIf(&cfg.LogFormat, fc.LogFormat)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.LogDir, fc.LogDir)
	setIf(&cfg.LogMaxFiles, fc.LogMaxFiles)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
