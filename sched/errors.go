package sched

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scheduler.
var (
	// ErrTaskNotFound is returned by Find when no registered task matches.
	// It is the only worker-side condition surfaced to callers.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNilTask is returned when a nil task is registered.
	ErrNilTask = errors.New("task cannot be nil")

	// ErrSchedulerAlreadyStarted is returned when Start is called twice.
	ErrSchedulerAlreadyStarted = errors.New("scheduler already started")

	// ErrSchedulerNotStarted is returned when Stop is called before Start.
	ErrSchedulerNotStarted = errors.New("scheduler not started")

	// ErrSchedulerStopped is returned when Start is called after Stop.
	// Scheduler instances are single-use.
	ErrSchedulerStopped = errors.New("scheduler stopped")

	// ErrTaskPanic matches TaskPanicError values via errors.Is.
	ErrTaskPanic = errors.New("task panicked")
)

// TaskExecutionError wraps an error returned by a task. It is logged at the
// core loop and never propagated.
type TaskExecutionError struct {
	// Core is the index of the core that ran the task.
	Core int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *TaskExecutionError) Error() string {
	return fmt.Sprintf("task on core %d failed: %v", e.Core, e.Err)
}

// Unwrap returns the underlying error.
func (e *TaskExecutionError) Unwrap() error {
	return e.Err
}

// TaskPanicError wraps a recovered task panic as an error.
type TaskPanicError struct {
	// Core is the index of the core that ran the task.
	Core int

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace captured at recovery.
	Stack []byte
}

// Error implements the error interface.
func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("task panic on core %d: %v", e.Core, e.Value)
}

// Is allows errors.Is to match TaskPanicError with ErrTaskPanic.
func (e *TaskPanicError) Is(target error) bool {
	return target == ErrTaskPanic
}
