package event

import "testing"

type testEvent struct {
	Base
}

type cancellableEvent struct {
	Base
	CancelFlag
}

func TestNewBase(t *testing.T) {
	b := NewBase("input.key", "input")

	if b.EventKind() != "input.key" {
		t.Errorf("EventKind() = %q, want %q", b.EventKind(), "input.key")
	}
	if b.Meta.ID == "" {
		t.Error("expected a generated event ID")
	}
	if b.Meta.Timestamp.IsZero() {
		t.Error("expected a creation timestamp")
	}
	if b.Meta.Source != "input" {
		t.Errorf("Source = %q, want %q", b.Meta.Source, "input")
	}

	other := NewBase("input.key", "input")
	if other.Meta.ID == b.Meta.ID {
		t.Error("expected unique IDs for distinct events")
	}
}

func TestCauseChain(t *testing.T) {
	root := &testEvent{Base: NewBase("collision.ray", "physics")}
	child := &testEvent{Base: NewBase("entity.damaged", "combat").CausedBy(root)}

	got, ok := CauseOf(child)
	if !ok {
		t.Fatal("expected a recorded cause")
	}
	if got != Event(root) {
		t.Error("CauseOf returned the wrong event")
	}

	if _, ok := CauseOf(root); ok {
		t.Error("root event should have no cause")
	}
}

func TestCancelFlag(t *testing.T) {
	ev := &cancellableEvent{Base: NewBase("entity.damaged", "combat")}

	if ev.Cancelled() {
		t.Error("zero value should not be cancelled")
	}
	ev.SetCancelled(true)
	if !ev.Cancelled() {
		t.Error("expected cancelled after SetCancelled(true)")
	}
	ev.SetCancelled(false)
	if ev.Cancelled() {
		t.Error("expected not cancelled after SetCancelled(false)")
	}
}

func TestCancellableInterface(t *testing.T) {
	var ev Event = &cancellableEvent{Base: NewBase("entity.damaged", "combat")}

	c, ok := ev.(Cancellable)
	if !ok {
		t.Fatal("expected event to satisfy Cancellable")
	}
	c.SetCancelled(true)
	if !c.Cancelled() {
		t.Error("expected cancelled via interface")
	}
}
