package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for the event manager.
var (
	// ErrManagerAlreadyStarted is returned when Start is called twice.
	ErrManagerAlreadyStarted = errors.New("event manager already started")

	// ErrManagerNotStarted is returned when Stop is called before Start.
	ErrManagerNotStarted = errors.New("event manager not started")

	// ErrManagerStopped is returned when Start is called after Stop.
	// Manager instances are single-use.
	ErrManagerStopped = errors.New("event manager stopped")

	// ErrNilListener is returned when a nil listener is registered.
	ErrNilListener = errors.New("listener cannot be nil")

	// ErrInvalidHandler is returned when a handler reference has a nil
	// entry point or a malformed kind.
	ErrInvalidHandler = errors.New("invalid handler reference")

	// ErrHandlerPanic matches PanicError values via errors.Is.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError wraps an error returned by a handler entry point.
// It is logged at the dispatch site and never propagated to Call.
type HandlerError struct {
	// Kind is the kind of the event being dispatched.
	Kind Kind

	// Accepts is the kind the failing handler was registered against.
	Accepts Kind

	// Priority is the failing handler's priority.
	Priority Priority

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler for %q failed on event %q: %v", e.Accepts, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a recovered handler panic as an error.
type PanicError struct {
	// Kind is the kind of the event being dispatched.
	Kind Kind

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace captured at recovery.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic on event %q: %v", e.Kind, e.Value)
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
