package event

import "context"

// Priority determines handler execution order within one dispatch pass.
// Lower values execute first.
type Priority int

const (
	// PriorityPreemptive is for handlers that must observe an event before
	// anyone else, typically to flag it cancelled.
	PriorityPreemptive Priority = 0

	// PriorityEarly is for core engine handlers that prepare state.
	PriorityEarly Priority = 100

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 200

	// PriorityLate is for handlers that react to the settled outcome.
	PriorityLate Priority = 300

	// PriorityPermissive is for metrics and logging handlers that run last.
	PriorityPermissive Priority = 400
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p <= PriorityPreemptive:
		return "preemptive"
	case p <= PriorityEarly:
		return "early"
	case p <= PriorityNormal:
		return "normal"
	case p <= PriorityLate:
		return "late"
	default:
		return "permissive"
	}
}

// HandlerFunc is a handler entry point. The context is the owning Manager's
// dispatch context; it is cancelled only after the dispatch loop has exited.
type HandlerFunc func(ctx context.Context, ev Event) error

// HandlerRef binds one handler entry point to a priority and the most
// general event kind it accepts. The handler receives every event whose
// kind is that kind or a descendant of it.
type HandlerRef struct {
	Priority Priority
	Kind     Kind
	Handle   HandlerFunc
}

// Validate reports whether the reference can be registered.
func (r HandlerRef) Validate() error {
	if r.Handle == nil {
		return ErrInvalidHandler
	}
	if !r.Kind.IsValid() {
		return ErrInvalidHandler
	}
	return nil
}

// Listener is an object exposing its handler entry points on demand.
// Registration is explicit: a Manager calls EventHandlers once at Register
// time and records the returned references; later changes to the returned
// slice have no effect.
type Listener interface {
	EventHandlers() []HandlerRef
}

// ListenerFunc adapts a function returning handler references to Listener.
// Function values are not comparable, so a ListenerFunc cannot be passed to
// Unregister; use a struct listener when unregistration is needed.
type ListenerFunc func() []HandlerRef

// EventHandlers implements the Listener interface.
func (f ListenerFunc) EventHandlers() []HandlerRef {
	return f()
}
