package sched

import "time"

// Task is a unit of periodic work. Execute receives the time elapsed since
// its previous run (or since registration for the first run); Interval is
// the minimum delay between runs.
//
// Tasks are identity-compared for registry membership, so register
// comparable values — in practice pointers.
type Task interface {
	Execute(delta time.Duration) error
	Interval() time.Duration
}

// FuncTask adapts a function to Task with a fixed interval.
type FuncTask struct {
	interval time.Duration
	fn       func(delta time.Duration) error
}

// NewFuncTask wraps fn as a task running at most once per interval.
// The returned pointer is the task's identity.
func NewFuncTask(interval time.Duration, fn func(delta time.Duration) error) *FuncTask {
	return &FuncTask{interval: interval, fn: fn}
}

// Execute runs the wrapped function.
func (t *FuncTask) Execute(delta time.Duration) error {
	return t.fn(delta)
}

// Interval returns the fixed interval.
func (t *FuncTask) Interval() time.Duration {
	return t.interval
}
