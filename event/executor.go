package event

import (
	"context"
	"runtime/debug"
	"time"
)

// Result describes one handler invocation.
type Result struct {
	// Err is the error returned by the handler, if any.
	Err error

	// Panicked reports whether the handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic().
	PanicValue any

	// PanicStack is the stack trace captured at recovery.
	PanicStack []byte

	// Duration is how long the invocation took.
	Duration time.Duration
}

// Ok reports whether the invocation completed without error or panic.
func (r Result) Ok() bool {
	return r.Err == nil && !r.Panicked
}

// PanicHandler is called when a handler panics.
type PanicHandler func(ev Event, recovered any, stack []byte)

// Executor invokes handler entry points with panic recovery and timing.
// A panicking handler never takes down the dispatch loop.
type Executor struct {
	panicHandler PanicHandler
}

// NewExecutor creates an executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorPanicHandler sets a hook invoked after a recovered panic.
func WithExecutorPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// Execute runs one handler with the given event and returns the result.
func (e *Executor) Execute(ctx context.Context, ev Event, fn HandlerFunc) (result Result) {
	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = stack

			if e.panicHandler != nil {
				func() {
					// A panicking panic handler must not escape either.
					defer func() { _ = recover() }()
					e.panicHandler(ev, r, stack)
				}()
			}
		}
	}()

	result.Err = fn(ctx, ev)
	return result
}
