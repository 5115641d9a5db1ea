// Package event provides the priority-ordered publish/subscribe core of the
// engine.
//
// A Manager owns an unbounded event queue and a sorted handler list and runs
// a single dispatch loop. Collaborators publish with Call (fire-and-forget)
// and attach behavior by registering Listeners, each of which declares an
// explicit, static set of handler entry points.
//
// # Event kinds
//
// Events carry a hierarchical Kind tag with dot notation:
//
//	input.key.pressed
//	collision.ray
//	frame.rendered
//
// A handler registered against "input" receives "input.key.pressed" too:
// descendant kinds are subtypes. There is no wildcard syntax and no runtime
// type inspection; dispatch is a segment-boundary prefix test.
//
// # Registration
//
// A Listener returns its handler references explicitly:
//
//	func (c *Combat) EventHandlers() []event.HandlerRef {
//	    return []event.HandlerRef{
//	        {Priority: event.PriorityEarly, Kind: "collision", Handle: c.onCollision},
//	        {Priority: event.PriorityNormal, Kind: "entity.died", Handle: c.onDeath},
//	    }
//	}
//
// References bind at Register time. A malformed reference (nil entry point,
// invalid kind) fails Register with ErrInvalidHandler; nothing is skipped
// silently.
//
// # Dispatch
//
// Handlers within one pass fire in ascending priority order; equal
// priorities fire in registration order. Each pass iterates a snapshot of
// the handler list, so register/unregister from any goroutine (including
// from inside a handler) never disturbs an in-progress pass.
//
// A handler that returns an error or panics is logged and contained; the
// pass and the loop continue. Cancellable events are a convention between
// handlers: the dispatcher never short-circuits on the flag.
//
// # Lifecycle
//
// Managers are single-use: construct, Start, Stop. Call buffers before
// Start and enqueues without delivery after Stop.
package event
