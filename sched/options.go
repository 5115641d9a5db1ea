package sched

import (
	"log/slog"
	"time"
)

// Option configures a Scheduler.
type Option func(*schedConfig)

// schedConfig contains configuration for a scheduler.
type schedConfig struct {
	cores   int
	log     *slog.Logger
	metrics Metrics
	maxIdle time.Duration
}

// DefaultCores is the number of cores an async scheduler owns unless
// configured otherwise.
const DefaultCores = 8

func defaultSchedConfig() schedConfig {
	return schedConfig{
		cores:   DefaultCores,
		log:     slog.Default(),
		metrics: nopMetrics{},
		maxIdle: defaultMaxIdle,
	}
}

// WithCores sets the number of cores an async scheduler owns.
// NewSync ignores this option.
func WithCores(n int) Option {
	return func(c *schedConfig) {
		if n > 0 {
			c.cores = n
		}
	}
}

// WithLogger sets the logger used at failure-containment points.
func WithLogger(log *slog.Logger) Option {
	return func(c *schedConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(metrics Metrics) Option {
	return func(c *schedConfig) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// WithMaxIdle caps how long an idle core sleeps between ticks.
func WithMaxIdle(d time.Duration) Option {
	return func(c *schedConfig) {
		if d > 0 {
			c.maxIdle = d
		}
	}
}
