package event

import "sync"

// Queue is an unbounded FIFO of pending events. Push never blocks and is
// safe from any goroutine, including from inside a running handler. The
// single consumer blocks on Wake instead of busy-polling when empty.
type Queue struct {
	mu    sync.Mutex
	items []Event
	wake  chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		wake: make(chan struct{}, 1),
	}
}

// Push appends an event and signals the consumer.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Pop removes and returns the oldest event, or false if the queue is empty.
func (q *Queue) Pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}
	ev := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	if len(q.items) == 0 {
		// Release the drained backing array.
		q.items = nil
	}
	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// Wake returns a channel that receives a signal after each Push.
// The channel carries at most one pending signal; a receiver must re-check
// the queue after draining it.
func (q *Queue) Wake() <-chan struct{} {
	return q.wake
}
