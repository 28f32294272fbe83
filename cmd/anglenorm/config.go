package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/soypat/angle"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Mode selects which normal form records are reduced to.
type Mode string

const (
	ModeSigned   Mode = "signed"
	ModeUnsigned Mode = "unsigned"
	ModePolar    Mode = "polar"
)

// Config holds the normalization parameters.
type Config struct {
	Unit angle.Unit `yaml:"unit"`
	Mode Mode       `yaml:"mode"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case ModeSigned, ModeUnsigned, ModePolar:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}
