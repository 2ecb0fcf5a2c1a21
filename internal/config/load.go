package config

import (
	"fmt"
	"os"
)

// DotEnvFile is the file loaded into the environment before variables are read.
const DotEnvFile = ".env"

// Load builds a Config by applying defaults, the config file, the
// environment and finally the flags the user set, then validates it.
// f may be nil when no flags are registered.
func Load(f *Flags) (*Config, error) {
	return load(f, os.LookupEnv, DotEnvFile)
}

func load(f *Flags, lookup lookupFunc, dotEnv string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if dotEnv != "" {
		if err := loadDotEnv(dotEnv); err != nil {
			return nil, err
		}
	}

	path, _ := lookup(envPrefix + "CONFIG")
	if f != nil && f.ConfigFile() != "" {
		path = f.ConfigFile()
	}
	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}

	if f != nil {
		f.apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
