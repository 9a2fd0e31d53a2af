// Package config loads classifier and CLI settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/gesture-knn/classifier"
)

const (
	// DefaultDataDir is the training directory used when none is configured.
	DefaultDataDir = "data"
)

// Log configures the structured logger.
type Log struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Config holds classifier settings.
type Config struct {
	K                  int    `yaml:"k"`
	MaxSamplesPerClass int    `yaml:"max_samples_per_class"`
	DataDir            string `yaml:"data_dir"`
	Log                Log    `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		K:                  classifier.DefaultK,
		MaxSamplesPerClass: classifier.DefaultMaxSamplesPerClass,
		DataDir:            DefaultDataDir,
		Log:                Log{Level: "info", Format: "text"},
	}
}

// Load reads path and fills unset fields from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the classifier parameters.
func (c Config) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("config: %w: %d", classifier.ErrInvalidK, c.K)
	}
	if c.MaxSamplesPerClass < 1 {
		return fmt.Errorf("config: %w: %d", classifier.ErrInvalidMaxSamples, c.MaxSamplesPerClass)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: unsupported log format %q", c.Log.Format)
	}
	return nil
}
