package event

import (
	"context"
	"errors"
	"testing"
)

func nopHandler(context.Context, Event) error { return nil }

// staticListener is a test listener with a fixed set of references.
type staticListener struct {
	refs []HandlerRef
}

func (l *staticListener) EventHandlers() []HandlerRef {
	return l.refs
}

func listenerWith(refs ...HandlerRef) *staticListener {
	return &staticListener{refs: refs}
}

func TestRegistry_SortsByPriority(t *testing.T) {
	r := NewRegistry()

	late := listenerWith(HandlerRef{Priority: PriorityLate, Kind: "a", Handle: nopHandler})
	early := listenerWith(HandlerRef{Priority: PriorityEarly, Kind: "a", Handle: nopHandler})
	normal := listenerWith(HandlerRef{Priority: PriorityNormal, Kind: "a", Handle: nopHandler})

	for _, l := range []*staticListener{late, early, normal} {
		if err := r.Add(l, l.EventHandlers()); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len(Snapshot()) = %d, want 3", len(snap))
	}
	want := []Priority{PriorityEarly, PriorityNormal, PriorityLate}
	for i, e := range snap {
		if e.ref.Priority != want[i] {
			t.Errorf("snapshot[%d].Priority = %v, want %v", i, e.ref.Priority, want[i])
		}
	}
}

func TestRegistry_TieBreakIsRegistrationOrder(t *testing.T) {
	r := NewRegistry()

	first := listenerWith(HandlerRef{Priority: PriorityNormal, Kind: "first", Handle: nopHandler})
	second := listenerWith(HandlerRef{Priority: PriorityNormal, Kind: "second", Handle: nopHandler})
	third := listenerWith(HandlerRef{Priority: PriorityNormal, Kind: "third", Handle: nopHandler})

	for _, l := range []*staticListener{first, second, third} {
		if err := r.Add(l, l.EventHandlers()); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	snap := r.Snapshot()
	want := []Kind{"first", "second", "third"}
	for i, e := range snap {
		if e.ref.Kind != want[i] {
			t.Errorf("snapshot[%d].Kind = %q, want %q", i, e.ref.Kind, want[i])
		}
	}
}

func TestRegistry_DuplicateAddDuplicatesHandlers(t *testing.T) {
	r := NewRegistry()
	l := listenerWith(HandlerRef{Priority: PriorityNormal, Kind: "a", Handle: nopHandler})

	for i := 0; i < 2; i++ {
		if err := r.Add(l, l.EventHandlers()); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	if got := r.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestRegistry_RemoveOwnerExact(t *testing.T) {
	r := NewRegistry()

	a := listenerWith(
		HandlerRef{Priority: PriorityEarly, Kind: "x", Handle: nopHandler},
		HandlerRef{Priority: PriorityLate, Kind: "y", Handle: nopHandler},
	)
	b := listenerWith(HandlerRef{Priority: PriorityNormal, Kind: "x", Handle: nopHandler})

	if err := r.Add(a, a.EventHandlers()); err != nil {
		t.Fatalf("Add(a) failed: %v", err)
	}
	if err := r.Add(b, b.EventHandlers()); err != nil {
		t.Fatalf("Add(b) failed: %v", err)
	}

	if removed := r.RemoveOwner(a); removed != 2 {
		t.Errorf("RemoveOwner(a) = %d, want 2", removed)
	}
	if got := r.Len(); got != 1 {
		t.Errorf("Len() after remove = %d, want 1", got)
	}
	snap := r.Snapshot()
	if snap[0].owner != Listener(b) {
		t.Error("remaining entry should belong to b")
	}

	// Removing again is a no-op.
	if removed := r.RemoveOwner(a); removed != 0 {
		t.Errorf("second RemoveOwner(a) = %d, want 0", removed)
	}
}

func TestRegistry_AddThenRemoveRestoresState(t *testing.T) {
	r := NewRegistry()

	resident := listenerWith(HandlerRef{Priority: PriorityNormal, Kind: "a", Handle: nopHandler})
	if err := r.Add(resident, resident.EventHandlers()); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	before := r.Snapshot()

	visitor := listenerWith(HandlerRef{Priority: PriorityEarly, Kind: "b", Handle: nopHandler})
	if err := r.Add(visitor, visitor.EventHandlers()); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	r.RemoveOwner(visitor)

	after := r.Snapshot()
	if len(after) != len(before) {
		t.Fatalf("len = %d, want %d", len(after), len(before))
	}
	for i := range after {
		if after[i].owner != before[i].owner || after[i].seq != before[i].seq {
			t.Errorf("entry %d changed after add/remove round trip", i)
		}
	}
}

func TestRegistry_InvalidRefRejectedAtomically(t *testing.T) {
	r := NewRegistry()

	l := listenerWith(
		HandlerRef{Priority: PriorityNormal, Kind: "ok", Handle: nopHandler},
		HandlerRef{Priority: PriorityNormal, Kind: "", Handle: nopHandler},
	)
	if err := r.Add(l, l.EventHandlers()); !errors.Is(err, ErrInvalidHandler) {
		t.Fatalf("Add() = %v, want ErrInvalidHandler", err)
	}
	if got := r.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0 after rejected add", got)
	}

	nilFn := listenerWith(HandlerRef{Priority: PriorityNormal, Kind: "ok", Handle: nil})
	if err := r.Add(nilFn, nilFn.EventHandlers()); !errors.Is(err, ErrInvalidHandler) {
		t.Fatalf("Add() = %v, want ErrInvalidHandler", err)
	}
}

func TestRegistry_SnapshotIsolation(t *testing.T) {
	r := NewRegistry()
	l := listenerWith(HandlerRef{Priority: PriorityNormal, Kind: "a", Handle: nopHandler})
	if err := r.Add(l, l.EventHandlers()); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	snap := r.Snapshot()
	r.RemoveOwner(l)

	if len(snap) != 1 {
		t.Error("snapshot should be unaffected by later removal")
	}
	if r.Len() != 0 {
		t.Error("registry should be empty after removal")
	}
}
