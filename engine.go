package tempest

import (
	"context"
	"log/slog"

	"github.com/tempest-engine/tempest/config"
	"github.com/tempest-engine/tempest/event"
	"github.com/tempest-engine/tempest/sched"
)

// Engine is the constructed coordination context: one event Manager and one
// async Scheduler sharing a logger and metrics. Collaborators receive an
// *Engine instead of reaching for process-wide singletons, so multiple
// independent engines can coexist and tests can tear one down
// deterministically.
//
// Engines are single-use, like the workers they own.
type Engine struct {
	cfg    config.Config
	log    *slog.Logger
	events *event.Manager
	tasks  *sched.Scheduler
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	log          *slog.Logger
	eventMetrics event.Metrics
	schedMetrics sched.Metrics
}

// WithLogger sets the logger shared by the engine's workers.
func WithLogger(log *slog.Logger) Option {
	return func(o *engineOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// WithEventMetrics sets the dispatch metrics sink.
func WithEventMetrics(m event.Metrics) Option {
	return func(o *engineOptions) {
		o.eventMetrics = m
	}
}

// WithSchedMetrics sets the scheduler metrics sink.
func WithSchedMetrics(m sched.Metrics) Option {
	return func(o *engineOptions) {
		o.schedMetrics = m
	}
}

// New builds an engine from the given configuration.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := engineOptions{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	eventOpts := []event.ManagerOption{event.WithLogger(o.log)}
	if o.eventMetrics != nil {
		eventOpts = append(eventOpts, event.WithMetrics(o.eventMetrics))
	}

	schedOpts := []sched.Option{
		sched.WithLogger(o.log),
		sched.WithCores(cfg.SchedulerCores),
		sched.WithMaxIdle(cfg.SchedulerMaxIdle),
	}
	if o.schedMetrics != nil {
		schedOpts = append(schedOpts, sched.WithMetrics(o.schedMetrics))
	}

	return &Engine{
		cfg:    cfg,
		log:    o.log,
		events: event.NewManager(eventOpts...),
		tasks:  sched.NewAsync(schedOpts...),
	}, nil
}

// Events returns the engine's event manager.
func (e *Engine) Events() *event.Manager {
	return e.events
}

// Scheduler returns the engine's task scheduler.
func (e *Engine) Scheduler() *sched.Scheduler {
	return e.tasks
}

// Start starts the dispatch loop and every scheduler core.
func (e *Engine) Start() error {
	if err := e.events.Start(); err != nil {
		return err
	}
	if err := e.tasks.Start(); err != nil {
		stopErr := e.events.Stop()
		if stopErr != nil {
			e.log.Error("stopping event manager after failed start", "err", stopErr)
		}
		return err
	}
	e.log.Debug("engine started", "cores", e.tasks.Cores())
	return nil
}

// Stop stops both workers, waiting for in-flight handler and task
// invocations to finish, bounded by the context deadline. The config's
// StopTimeout applies when the context carries no deadline.
func (e *Engine) Stop(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.StopTimeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		err := e.events.Stop()
		if stopErr := e.tasks.Stop(); err == nil {
			err = stopErr
		}
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
