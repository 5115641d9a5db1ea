// Package sched provides the engine's interval-based task scheduler.
//
// A Scheduler owns one core (NewSync) or a fixed pool of cores (NewAsync,
// eight by default). Each Core is an independent worker loop: every tick it
// snapshots its task list, fires each task whose elapsed time since its
// last run reaches the task's interval, and then blocks until the earliest
// next due instant.
//
// Placement is round-robin via a shared Distributor:
//
//   - Register sends one task to the next core.
//   - RegisterAsync spreads a batch one task per successive core.
//   - RegisterSync pins a whole batch to a single core, which is the way to
//     guarantee that the batch's tasks never run concurrently with each
//     other.
//
// A task's Execute receives the measured delta since its previous run; the
// first delta is measured from registration. Removing and re-adding a task
// resets that baseline.
//
// Task failures are isolated per invocation: an error or panic is logged
// and counted, and the owning core's loop continues. The only condition a
// caller ever sees is ErrTaskNotFound from Find.
//
// Schedulers are single-use: construct, Start, Stop.
package sched
