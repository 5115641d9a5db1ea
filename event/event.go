package event

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event is a notification broadcast through a Manager.
// Events are immutable once created, except for the Cancellable flag.
type Event interface {
	// EventKind returns the event's hierarchical type tag.
	EventKind() Kind
}

// Meta contains standard information attached to an event.
type Meta struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the module that published the event.
	Source string

	// Cause is the event that led to this one, if any.
	// The chain is read-only ancestry; it is never walked by the dispatcher.
	Cause Event
}

// MetaProvider is implemented by events that carry metadata.
type MetaProvider interface {
	EventMeta() Meta
}

// Base is an embeddable event implementation carrying a kind and metadata.
//
//	type KeyPressed struct {
//	    event.Base
//	    Code int
//	}
//
//	ev := KeyPressed{Base: event.NewBase("input.key.pressed", "input"), Code: 27}
type Base struct {
	Kind Kind
	Meta Meta
}

// NewBase creates event base data with a fresh ID and timestamp.
func NewBase(kind Kind, source string) Base {
	return Base{
		Kind: kind,
		Meta: Meta{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// CausedBy returns a copy of the base with the causing event recorded.
func (b Base) CausedBy(cause Event) Base {
	b.Meta.Cause = cause
	return b
}

// EventKind returns the event's kind.
func (b Base) EventKind() Kind {
	return b.Kind
}

// EventMeta returns the event's metadata.
func (b Base) EventMeta() Meta {
	return b.Meta
}

// Cancellable is an event capability exposing a mutable cancellation flag.
// The flag is a convention between handlers: the dispatcher itself never
// short-circuits a pass on it.
type Cancellable interface {
	Event

	// Cancelled reports whether a handler has flagged the event.
	Cancelled() bool

	// SetCancelled sets or clears the flag.
	SetCancelled(cancelled bool)
}

// CancelFlag is an embeddable Cancellable implementation.
// The zero value is ready to use and not cancelled.
type CancelFlag struct {
	cancelled atomic.Bool
}

// Cancelled reports whether the flag is set.
func (f *CancelFlag) Cancelled() bool {
	return f.cancelled.Load()
}

// SetCancelled sets or clears the flag.
func (f *CancelFlag) SetCancelled(cancelled bool) {
	f.cancelled.Store(cancelled)
}

// CauseOf returns the event that caused ev, if ev carries metadata with a
// recorded cause.
func CauseOf(ev Event) (Event, bool) {
	mp, ok := ev.(MetaProvider)
	if !ok {
		return nil, false
	}
	cause := mp.EventMeta().Cause
	return cause, cause != nil
}
