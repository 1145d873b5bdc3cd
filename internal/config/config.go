// Package config loads process configuration for the CLI and the
// diagnostics server. Environment variables take precedence over an
// optional YAML file, with struct-tag defaults below both.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full process configuration. DictPath is the single setting
// the dictionary resolver consumes; the rest serve the CLI surface.
type Config struct {
	// DictPath overrides dictionary resolution: when set, the resolver tries
	// it before any of the loader's own candidate paths.
	DictPath string `yaml:"dict_path" env:"HEBMORPH_DICT_PATH"`

	// Listen is the diagnostics server bind address.
	Listen string `yaml:"listen" env:"HEBMORPH_LISTEN" env-default:"127.0.0.1:3533"`
}

// Load reads configuration from the YAML file named by HEBMORPH_CONFIG
// (fallback ./hebmorph.yaml) and the environment. A missing file is only an
// error when the path was set explicitly.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("HEBMORPH_CONFIG")
	explicit := path != ""
	if !explicit {
		path = "./hebmorph.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	return &cfg, nil
}
