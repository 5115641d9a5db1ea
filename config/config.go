package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls how an engine core is assembled. Values are fixed at
// construction time; the core's single-use lifecycle has no reload point.
type Config struct {
	// SchedulerCores is the async scheduler's pool size.
	SchedulerCores int `env:"TEMPEST_SCHEDULER_CORES"`

	// SchedulerMaxIdle caps how long an idle scheduler core sleeps.
	SchedulerMaxIdle time.Duration `env:"TEMPEST_SCHEDULER_MAX_IDLE"`

	// MetricsNamespace prefixes exported metric names.
	MetricsNamespace string `env:"TEMPEST_METRICS_NAMESPACE"`

	// StopTimeout bounds how long Engine.Stop waits for worker loops.
	StopTimeout time.Duration `env:"TEMPEST_STOP_TIMEOUT"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		SchedulerCores:   8,
		SchedulerMaxIdle: 250 * time.Millisecond,
		MetricsNamespace: "tempest",
		StopTimeout:      5 * time.Second,
	}
}

// FromEnv returns the defaults overlaid with TEMPEST_* environment
// variables.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.SchedulerCores < 1 {
		return fmt.Errorf("scheduler_cores must be at least 1, got %d", c.SchedulerCores)
	}
	if c.SchedulerMaxIdle <= 0 {
		return fmt.Errorf("scheduler_max_idle must be positive, got %s", c.SchedulerMaxIdle)
	}
	if c.StopTimeout <= 0 {
		return fmt.Errorf("stop_timeout must be positive, got %s", c.StopTimeout)
	}
	return nil
}
