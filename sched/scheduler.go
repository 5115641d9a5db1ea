package sched

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Scheduler is the façade over one or more cores. A sync scheduler owns one
// core, so its tasks never run concurrently with each other; an async
// scheduler owns a fixed pool of cores and distributes tasks round-robin.
//
// Schedulers are single-use: Start once, Stop once. Restart after Stop is
// not supported.
type Scheduler struct {
	log   *slog.Logger
	cores []*Core
	dist  *Distributor

	started atomic.Bool
	stopped atomic.Bool
}

// NewSync creates a scheduler with a single core. WithCores is ignored.
func NewSync(opts ...Option) *Scheduler {
	cfg := defaultSchedConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.cores = 1
	return newScheduler(cfg)
}

// NewAsync creates a scheduler with a fixed pool of cores
// (DefaultCores unless WithCores is given).
func NewAsync(opts ...Option) *Scheduler {
	cfg := defaultSchedConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newScheduler(cfg)
}

func newScheduler(cfg schedConfig) *Scheduler {
	s := &Scheduler{
		log:  cfg.log,
		dist: NewDistributor(cfg.cores),
	}
	s.cores = make([]*Core, cfg.cores)
	for i := range s.cores {
		s.cores[i] = newCore(i, cfg.log, cfg.metrics, cfg.maxIdle)
	}
	return s
}

// Start starts every owned core.
func (s *Scheduler) Start() error {
	if s.stopped.Load() {
		return ErrSchedulerStopped
	}
	if s.started.Swap(true) {
		return ErrSchedulerAlreadyStarted
	}

	s.log.Debug("scheduler starting", "cores", len(s.cores))
	for _, c := range s.cores {
		c.start()
	}
	return nil
}

// Stop signals every core to terminate and waits for their loops to exit.
// In-flight task invocations run to completion.
func (s *Scheduler) Stop() error {
	if !s.started.Load() {
		return ErrSchedulerNotStarted
	}
	if s.stopped.Swap(true) {
		return ErrSchedulerStopped
	}

	for _, c := range s.cores {
		c.stop()
	}
	s.log.Debug("scheduler stopped", "cores", len(s.cores))
	return nil
}

// Register adds the task to the next core in round-robin order. The
// registration time becomes the task's initial last-run baseline. Tasks are
// identity-compared, so register comparable values, in practice pointers.
func (s *Scheduler) Register(t Task) error {
	if t == nil {
		return ErrNilTask
	}
	s.cores[s.dist.Next()].Add(t, time.Now())
	return nil
}

// RegisterSync places the entire batch on a single core, for tasks that
// must never run concurrently with each other.
func (s *Scheduler) RegisterSync(tasks ...Task) error {
	for _, t := range tasks {
		if t == nil {
			return ErrNilTask
		}
	}
	if len(tasks) == 0 {
		return nil
	}

	core := s.cores[s.dist.Next()]
	for _, t := range tasks {
		core.Add(t, time.Now())
	}
	return nil
}

// RegisterAsync spreads the batch one task per successive core, for
// independent, parallelizable tasks.
func (s *Scheduler) RegisterAsync(tasks ...Task) error {
	for _, t := range tasks {
		if t == nil {
			return ErrNilTask
		}
	}
	for _, t := range tasks {
		s.cores[s.dist.Next()].Add(t, time.Now())
	}
	return nil
}

// Unregister removes the tasks from whichever cores hold them and returns
// how many were removed. Absent tasks are a no-op.
func (s *Scheduler) Unregister(tasks ...Task) int {
	removed := 0
	for _, t := range tasks {
		if t == nil {
			continue
		}
		for _, c := range s.cores {
			if c.Remove(t) {
				removed++
			}
		}
	}
	return removed
}

// Contains reports whether the task is registered on any core.
func (s *Scheduler) Contains(t Task) bool {
	for _, c := range s.cores {
		if c.Contains(t) {
			return true
		}
	}
	return false
}

// Find returns the first registered task matching the predicate, scanning
// cores in index order. Returns ErrTaskNotFound if no task matches.
func (s *Scheduler) Find(match func(Task) bool) (Task, error) {
	for _, c := range s.cores {
		for _, t := range c.Tasks() {
			if match(t) {
				return t, nil
			}
		}
	}
	return nil, ErrTaskNotFound
}

// Cores returns the number of owned cores.
func (s *Scheduler) Cores() int {
	return len(s.cores)
}

// TaskCounts returns the number of tasks currently on each core.
func (s *Scheduler) TaskCounts() []int {
	counts := make([]int, len(s.cores))
	for i, c := range s.cores {
		counts[i] = c.Len()
	}
	return counts
}

// Len returns the total number of registered tasks across all cores.
func (s *Scheduler) Len() int {
	total := 0
	for _, c := range s.cores {
		total += c.Len()
	}
	return total
}

// IsRunning reports whether the cores are active.
func (s *Scheduler) IsRunning() bool {
	return s.started.Load() && !s.stopped.Load()
}
