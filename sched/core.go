package sched

import (
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// defaultMaxIdle caps how long an idle core sleeps. Wake signals on
// registration make the cap a safety net, not the reaction latency.
const defaultMaxIdle = 250 * time.Millisecond

// Core is one worker loop owning a subset of the scheduler's tasks. Each
// tick snapshots the task list, fires every due task, and blocks until the
// earliest next due instant instead of busy-polling.
type Core struct {
	id      int
	log     *slog.Logger
	metrics Metrics
	maxIdle time.Duration

	mu      sync.Mutex
	tasks   []Task
	lastRun map[Task]time.Time

	wake   chan struct{}
	done   chan struct{}
	exited chan struct{}
}

func newCore(id int, log *slog.Logger, metrics Metrics, maxIdle time.Duration) *Core {
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdle
	}
	return &Core{
		id:      id,
		log:     log,
		metrics: metrics,
		maxIdle: maxIdle,
		lastRun: make(map[Task]time.Time),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
}

// ID returns the core's index within its scheduler.
func (c *Core) ID() int {
	return c.id
}

// Add registers a task with the given last-run baseline. The first interval
// check measures from the baseline, not from zero.
func (c *Core) Add(t Task, baseline time.Time) {
	c.mu.Lock()
	c.tasks = append(c.tasks, t)
	c.lastRun[t] = baseline
	count := len(c.tasks)
	c.mu.Unlock()

	c.metrics.RecordTaskCount(c.id, count)

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Remove unregisters the task, reporting whether it was present. A removed
// and re-added task starts over from a fresh baseline.
func (c *Core) Remove(t Task) bool {
	c.mu.Lock()
	kept := c.tasks[:0]
	removed := false
	for _, cur := range c.tasks {
		if cur == t {
			removed = true
			continue
		}
		kept = append(kept, cur)
	}
	for i := len(kept); i < len(c.tasks); i++ {
		c.tasks[i] = nil
	}
	c.tasks = kept
	delete(c.lastRun, t)
	count := len(c.tasks)
	c.mu.Unlock()

	if removed {
		c.metrics.RecordTaskCount(c.id, count)
	}
	return removed
}

// Contains reports whether the task is registered on this core.
func (c *Core) Contains(t Task) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, cur := range c.tasks {
		if cur == t {
			return true
		}
	}
	return false
}

// Len returns the number of registered tasks.
func (c *Core) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.tasks)
}

// Tasks returns a snapshot of the task list.
func (c *Core) Tasks() []Task {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.tasks) == 0 {
		return nil
	}
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

func (c *Core) start() {
	go c.run()
}

func (c *Core) stop() {
	close(c.done)
	<-c.exited
}

// run is the tick loop. The stop signal is checked at the top of each
// iteration; an in-flight task invocation runs to completion.
func (c *Core) run() {
	defer close(c.exited)

	timer := time.NewTimer(c.maxIdle)
	defer timer.Stop()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		next, fired := c.pass()
		if fired > 0 {
			continue
		}

		wait := time.Until(next)
		if wait <= 0 {
			continue
		}
		if wait > c.maxIdle {
			wait = c.maxIdle
		}

		timer.Reset(wait)
		select {
		case <-c.done:
			return
		case <-c.wake:
		case <-timer.C:
		}
	}
}

// pass runs one tick over a snapshot of the task list. Tasks added during
// the pass are observed on the next snapshot. Returns the earliest instant
// any task becomes due and how many tasks fired.
func (c *Core) pass() (next time.Time, fired int) {
	snapshot := c.Tasks()
	next = time.Now().Add(c.maxIdle)

	for _, t := range snapshot {
		now := time.Now()

		c.mu.Lock()
		prev, registered := c.lastRun[t]
		c.mu.Unlock()
		if !registered {
			// Removed since the snapshot was taken.
			continue
		}

		interval := t.Interval()
		delta := now.Sub(prev)
		if delta < interval {
			if due := prev.Add(interval); due.Before(next) {
				next = due
			}
			continue
		}

		c.invoke(t, delta, now)
		fired++
		if due := now.Add(interval); due.Before(next) {
			next = due
		}
	}

	return next, fired
}

// invoke runs one task with panic isolation. The last-run timestamp moves
// only after the invocation actually happened, and only while the task is
// still registered, so Remove stays final.
func (c *Core) invoke(t Task, delta time.Duration, now time.Time) {
	start := time.Now()
	err := c.execute(t, delta)
	elapsed := time.Since(start)

	var perr *TaskPanicError
	switch {
	case errors.As(err, &perr):
		c.metrics.RecordTaskPanic(c.id)
		c.log.Error("task panic", "core", c.id, "panic", perr.Value, "err", err)
	case err != nil:
		c.metrics.RecordTaskError(c.id)
		c.log.Error("task error", "core", c.id, "err", &TaskExecutionError{Core: c.id, Err: err})
	default:
		c.metrics.RecordTaskRun(c.id, elapsed)
	}

	c.mu.Lock()
	if _, registered := c.lastRun[t]; registered {
		c.lastRun[t] = now
	}
	c.mu.Unlock()
}

// execute calls Execute with panic recovery, converting a panic into a
// TaskPanicError so a failing task never takes down the loop.
func (c *Core) execute(t Task, delta time.Duration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TaskPanicError{Core: c.id, Value: r, Stack: debug.Stack()}
		}
	}()
	return t.Execute(delta)
}
