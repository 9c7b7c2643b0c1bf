// Package config holds the settings of a generation run.
//
// Values come from, in increasing priority: built-in defaults, an optional
// YAML file, and command-line flags applied by the caller.
//
// Example file:
//
//	count: 50000
//	output: var/hits.csv
//	seed: 42
//	log_level: debug
//	run_log: var/runs.db
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCount    = 10000
	DefaultOutput   = "hits2_synthetic_data.csv"
	DefaultLogLevel = "info"
)

var (
	ErrInvalidCount = errors.New("count must not be negative")
	ErrEmptyOutput  = errors.New("output path must not be empty")
)

// Config describes one generation run.
type Config struct {
	Count    int     `yaml:"count"`
	Output   string  `yaml:"output"`
	Seed     *uint64 `yaml:"seed"`
	LogLevel string  `yaml:"log_level"`

	// RunLog is the bbolt file that records runs. Empty disables the ledger.
	RunLog string `yaml:"run_log"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Count:    DefaultCount,
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file on top of the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first setting that cannot produce a run.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Count)
	}
	if c.Output == "" {
		return ErrEmptyOutput
	}
	return nil
}
