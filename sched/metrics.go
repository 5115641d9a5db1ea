package sched

import "time"

// Metrics receives task execution observations. Implementations must be
// safe for concurrent use; each core reports independently.
type Metrics interface {
	// RecordTaskRun is called after a task invocation completes normally.
	RecordTaskRun(core int, duration time.Duration)

	// RecordTaskError is called when a task returns an error.
	RecordTaskError(core int)

	// RecordTaskPanic is called when a task panics.
	RecordTaskPanic(core int)

	// RecordTaskCount is called when a core's task list changes.
	RecordTaskCount(core int, count int)
}

// nopMetrics discards all observations.
type nopMetrics struct{}

func (nopMetrics) RecordTaskRun(int, time.Duration) {}
func (nopMetrics) RecordTaskError(int)              {}
func (nopMetrics) RecordTaskPanic(int)              {}
func (nopMetrics) RecordTaskCount(int, int)         {}
