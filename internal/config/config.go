// Package config holds the advent CLI configuration: where puzzle inputs
// live and the expected answers used by the check command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked for when --config is not given.
const DefaultPath = "advent.yaml"

// Answer records the expected answers for one day, used by `advent check`.
type Answer struct {
	PartOne string `yaml:"part_one"`
	PartTwo string `yaml:"part_two"`
}

// Config holds all advent configuration.
type Config struct {
	// InputsDir is the directory holding day-N-input files.
	InputsDir string `yaml:"inputs_dir"`

	// Answers maps day numbers to their expected answers.
	Answers map[int]Answer `yaml:"answers"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		InputsDir: "inputs",
		Answers:   make(map[int]Answer),
	}
}

// Load reads a config file. A missing file at the default path is not an
// error: defaults apply. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Answers == nil {
		cfg.Answers = make(map[int]Answer)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides reads settings from the environment. ADVENT_INPUTS
// overrides the inputs directory.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("ADVENT_INPUTS"); dir != "" {
		c.InputsDir = dir
	}
}
