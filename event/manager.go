package event

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Manager owns the event queue and the sorted handler list and runs one
// dispatch loop. Call, Register and Unregister are safe from any goroutine,
// including from inside a running handler.
//
// A Manager is single-use: Start once, Stop once. Restart after Stop is not
// supported.
type Manager struct {
	registry *Registry
	queue    *Queue
	executor *Executor

	log          *slog.Logger
	metrics      Metrics
	panicHandler PanicHandler

	ctx    context.Context
	cancel context.CancelFunc

	started atomic.Bool
	stopped atomic.Bool
	done    chan struct{}
	exited  chan struct{}

	dispatched    atomic.Uint64
	invoked       atomic.Uint64
	handlerErrors atomic.Uint64
	handlerPanics atomic.Uint64
}

// NewManager creates a Manager. It does not dispatch until Start is called;
// events passed to Call before Start are buffered.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		registry: NewRegistry(),
		queue:    NewQueue(),
		log:      slog.Default(),
		metrics:  nopMetrics{},
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.executor = NewExecutor(WithExecutorPanicHandler(m.panicHandler))
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return m
}

// Start begins the dispatch loop on its own goroutine.
func (m *Manager) Start() error {
	if m.stopped.Load() {
		return ErrManagerStopped
	}
	if m.started.Swap(true) {
		return ErrManagerAlreadyStarted
	}

	m.log.Debug("event manager starting")
	go m.run()
	return nil
}

// Stop signals the dispatch loop to terminate after the current drain
// iteration and waits for it to exit. In-flight handler invocations run to
// completion; events still queued are not delivered.
func (m *Manager) Stop() error {
	if !m.started.Load() {
		return ErrManagerNotStarted
	}
	if m.stopped.Swap(true) {
		return ErrManagerStopped
	}

	close(m.done)
	<-m.exited
	m.cancel()
	m.log.Debug("event manager stopped", "undelivered", m.queue.Len())
	return nil
}

// Call enqueues an event for dispatch. It never blocks and never reports
// handler failures to the caller. Calling with a nil event is a no-op.
func (m *Manager) Call(ev Event) {
	if ev == nil {
		return
	}
	m.queue.Push(ev)
	m.metrics.RecordQueueDepth(m.queue.Len())
}

// Register records the listener's handler references and re-sorts the
// handler list. Registering the same listener twice duplicates its handlers.
func (m *Manager) Register(l Listener) error {
	if l == nil {
		return ErrNilListener
	}
	return m.registry.Add(l, l.EventHandlers())
}

// Unregister removes every handler reference the listener previously
// contributed and returns how many were removed.
func (m *Manager) Unregister(l Listener) int {
	if l == nil {
		return 0
	}
	return m.registry.RemoveOwner(l)
}

// RegisterAll registers each listener in order, stopping at the first error.
func (m *Manager) RegisterAll(listeners ...Listener) error {
	for _, l := range listeners {
		if err := m.Register(l); err != nil {
			return err
		}
	}
	return nil
}

// UnregisterAll unregisters each listener and returns the total number of
// handler references removed.
func (m *Manager) UnregisterAll(listeners ...Listener) int {
	removed := 0
	for _, l := range listeners {
		removed += m.Unregister(l)
	}
	return removed
}

// IsRunning reports whether the dispatch loop is active.
func (m *Manager) IsRunning() bool {
	return m.started.Load() && !m.stopped.Load()
}

// run is the dispatch loop. The stop signal is checked at the top of each
// iteration; an empty queue blocks on the wake channel rather than spinning.
func (m *Manager) run() {
	defer close(m.exited)

	for {
		select {
		case <-m.done:
			return
		default:
		}

		ev, ok := m.queue.Pop()
		if !ok {
			select {
			case <-m.done:
				return
			case <-m.queue.Wake():
			}
			continue
		}

		m.dispatch(ev)
	}
}

// dispatch runs one full pass over a snapshot of the handler list.
// Concurrent register/unregister calls affect only later passes.
func (m *Manager) dispatch(ev Event) {
	m.dispatched.Add(1)
	kind := ev.EventKind()

	for _, e := range m.registry.Snapshot() {
		if !kind.Is(e.ref.Kind) {
			continue
		}

		m.invoked.Add(1)
		res := m.executor.Execute(m.ctx, ev, e.ref.Handle)

		switch {
		case res.Panicked:
			m.handlerPanics.Add(1)
			m.metrics.RecordHandlerPanic(kind)
			perr := &PanicError{Kind: kind, Value: res.PanicValue, Stack: res.PanicStack}
			m.log.Error("handler panic",
				"event", kind.String(),
				"accepts", e.ref.Kind.String(),
				"priority", e.ref.Priority.String(),
				"panic", res.PanicValue,
				"err", perr)
		case res.Err != nil:
			m.handlerErrors.Add(1)
			m.metrics.RecordHandlerError(kind)
			herr := &HandlerError{Kind: kind, Accepts: e.ref.Kind, Priority: e.ref.Priority, Err: res.Err}
			m.log.Error("handler error",
				"event", kind.String(),
				"accepts", e.ref.Kind.String(),
				"priority", e.ref.Priority.String(),
				"err", herr)
		}
	}

	m.metrics.RecordDispatch(kind)
	m.metrics.RecordQueueDepth(m.queue.Len())
}

// Stats contains dispatch counters.
type Stats struct {
	// Dispatched is the number of events that completed a dispatch pass.
	Dispatched uint64

	// HandlersInvoked is the number of handler invocations.
	HandlersInvoked uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64

	// QueueDepth is the current number of pending events.
	QueueDepth int

	// RegisteredHandlers is the current handler list size.
	RegisteredHandlers int
}

// Stats returns current dispatch counters.
func (m *Manager) Stats() Stats {
	return Stats{
		Dispatched:         m.dispatched.Load(),
		HandlersInvoked:    m.invoked.Load(),
		HandlerErrors:      m.handlerErrors.Load(),
		HandlerPanics:      m.handlerPanics.Load(),
		QueueDepth:         m.queue.Len(),
		RegisteredHandlers: m.registry.Len(),
	}
}
