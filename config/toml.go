package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config with optional fields so a partial file only
// overrides what it names. Durations are strings in time.ParseDuration
// syntax ("250ms", "5s").
type fileConfig struct {
	SchedulerCores   *int    `toml:"scheduler_cores"`
	SchedulerMaxIdle *string `toml:"scheduler_max_idle"`
	MetricsNamespace *string `toml:"metrics_namespace"`
	StopTimeout      *string `toml:"stop_timeout"`
}

// Load returns the defaults overlaid with values from a TOML file. A
// missing file is not an error; the defaults come back unchanged.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}

	cfg := Default()
	if file.SchedulerCores != nil {
		cfg.SchedulerCores = *file.SchedulerCores
	}
	if file.MetricsNamespace != nil {
		cfg.MetricsNamespace = *file.MetricsNamespace
	}
	if file.SchedulerMaxIdle != nil {
		d, err := time.ParseDuration(*file.SchedulerMaxIdle)
		if err != nil {
			return Config{}, &ParseError{Path: path, Err: fmt.Errorf("scheduler_max_idle: %w", err)}
		}
		cfg.SchedulerMaxIdle = d
	}
	if file.StopTimeout != nil {
		d, err := time.ParseDuration(*file.StopTimeout)
		if err != nil {
			return Config{}, &ParseError{Path: path, Err: fmt.Errorf("stop_timeout: %w", err)}
		}
		cfg.StopTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseError describes a malformed configuration file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
