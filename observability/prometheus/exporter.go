// Package prometheus exports engine-core metrics as Prometheus collectors.
// One Exporter implements both event.Metrics and sched.Metrics so a single
// registration covers the dispatch loop and every scheduler core.
package prometheus

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/tempest-engine/tempest/event"
	"github.com/tempest-engine/tempest/sched"
)

// Options controls collector configuration.
type Options struct {
	// DurationBuckets overrides the task duration histogram buckets.
	DurationBuckets []float64
}

// Exporter adapts event.Metrics and sched.Metrics to Prometheus collectors.
type Exporter struct {
	eventsDispatched    *prom.CounterVec
	handlerFailures     *prom.CounterVec
	eventQueueDepth     prom.Gauge
	taskOutcomes        *prom.CounterVec
	taskDurationSeconds *prom.HistogramVec
	coreTaskCount       *prom.GaugeVec
}

var (
	_ event.Metrics = (*Exporter)(nil)
	_ sched.Metrics = (*Exporter)(nil)
)

// NewExporter creates and registers the collectors. Registering against a
// registry that already holds identically named collectors reuses them.
func NewExporter(namespace string, reg prom.Registerer, opts Options) (*Exporter, error) {
	if namespace == "" {
		namespace = "tempest"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	buckets := opts.DurationBuckets
	if len(buckets) == 0 {
		buckets = prom.DefBuckets
	}

	dispatchedVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "events_dispatched_total",
		Help:      "Total number of events that completed a dispatch pass.",
	}, []string{"kind"})
	failureVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "handler_failures_total",
		Help:      "Total number of handler errors and panics.",
	}, []string{"kind", "reason"})
	queueDepth := prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "event_queue_depth",
		Help:      "Current number of pending events.",
	})
	outcomeVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "task_runs_total",
		Help:      "Total number of task invocations by outcome.",
	}, []string{"core", "outcome"})
	durationVec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "task_duration_seconds",
		Help:      "Task execution duration in seconds.",
		Buckets:   buckets,
	}, []string{"core"})
	taskCountVec := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "core_task_count",
		Help:      "Current number of tasks registered per core.",
	}, []string{"core"})

	var err error
	if dispatchedVec, err = registerCollector(reg, dispatchedVec); err != nil {
		return nil, err
	}
	if failureVec, err = registerCollector(reg, failureVec); err != nil {
		return nil, err
	}
	if queueDepth, err = registerCollector(reg, queueDepth); err != nil {
		return nil, err
	}
	if outcomeVec, err = registerCollector(reg, outcomeVec); err != nil {
		return nil, err
	}
	if durationVec, err = registerCollector(reg, durationVec); err != nil {
		return nil, err
	}
	if taskCountVec, err = registerCollector(reg, taskCountVec); err != nil {
		return nil, err
	}

	return &Exporter{
		eventsDispatched:    dispatchedVec,
		handlerFailures:     failureVec,
		eventQueueDepth:     queueDepth,
		taskOutcomes:        outcomeVec,
		taskDurationSeconds: durationVec,
		coreTaskCount:       taskCountVec,
	}, nil
}

// RecordDispatch counts a completed dispatch pass.
func (e *Exporter) RecordDispatch(kind event.Kind) {
	if e == nil {
		return
	}
	e.eventsDispatched.WithLabelValues(kind.String()).Inc()
}

// RecordHandlerError counts a handler error.
func (e *Exporter) RecordHandlerError(kind event.Kind) {
	if e == nil {
		return
	}
	e.handlerFailures.WithLabelValues(kind.String(), "error").Inc()
}

// RecordHandlerPanic counts a handler panic.
func (e *Exporter) RecordHandlerPanic(kind event.Kind) {
	if e == nil {
		return
	}
	e.handlerFailures.WithLabelValues(kind.String(), "panic").Inc()
}

// RecordQueueDepth tracks the pending-event count.
func (e *Exporter) RecordQueueDepth(depth int) {
	if e == nil {
		return
	}
	e.eventQueueDepth.Set(float64(depth))
}

// RecordTaskRun counts a successful task invocation and its duration.
func (e *Exporter) RecordTaskRun(core int, duration time.Duration) {
	if e == nil {
		return
	}
	label := coreLabel(core)
	e.taskOutcomes.WithLabelValues(label, "ok").Inc()
	e.taskDurationSeconds.WithLabelValues(label).Observe(duration.Seconds())
}

// RecordTaskError counts a task error.
func (e *Exporter) RecordTaskError(core int) {
	if e == nil {
		return
	}
	e.taskOutcomes.WithLabelValues(coreLabel(core), "error").Inc()
}

// RecordTaskPanic counts a task panic.
func (e *Exporter) RecordTaskPanic(core int) {
	if e == nil {
		return
	}
	e.taskOutcomes.WithLabelValues(coreLabel(core), "panic").Inc()
}

// RecordTaskCount tracks how many tasks a core holds.
func (e *Exporter) RecordTaskCount(core int, count int) {
	if e == nil {
		return
	}
	e.coreTaskCount.WithLabelValues(coreLabel(core)).Set(float64(count))
}

func coreLabel(core int) string {
	return strconv.Itoa(core)
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegistered prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		existing, ok := alreadyRegistered.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}
