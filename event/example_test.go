package event_test

import (
	"context"
	"fmt"

	"github.com/tempest-engine/tempest/event"
)

type keyPressed struct {
	event.Base
	Code int
}

func Example() {
	m := event.NewManager()

	done := make(chan struct{})
	listener := event.ListenerFunc(func() []event.HandlerRef {
		return []event.HandlerRef{{
			Priority: event.PriorityNormal,
			Kind:     "input.key",
			Handle: func(_ context.Context, ev event.Event) error {
				fmt.Println("handling", ev.EventKind())
				close(done)
				return nil
			},
		}}
	})

	if err := m.Register(listener); err != nil {
		fmt.Println("register:", err)
		return
	}
	if err := m.Start(); err != nil {
		fmt.Println("start:", err)
		return
	}

	m.Call(&keyPressed{Base: event.NewBase("input.key.pressed", "example"), Code: 27})
	<-done

	if err := m.Stop(); err != nil {
		fmt.Println("stop:", err)
	}

	// Output:
	// handling input.key.pressed
}
