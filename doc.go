// Package tempest is the event-dispatch and task-scheduling core that
// coordinates concurrent execution inside an engine.
//
// Two worker families run independently: the event Manager's dispatch loop
// delivers published events to priority-ordered handlers, and each
// scheduler Core fires registered tasks when their intervals elapse. Both
// isolate collaborator failures per invocation and resolve concurrent
// registration against in-progress iteration by snapshotting.
//
// The root package ties them together in an Engine context object:
//
//	cfg := config.Default()
//	eng, err := tempest.New(cfg)
//	if err != nil {
//	    return err
//	}
//	if err := eng.Start(); err != nil {
//	    return err
//	}
//	defer eng.Stop(context.Background())
//
//	eng.Events().Register(listener)
//	eng.Events().Call(ev)
//	eng.Scheduler().Register(task)
//
// Subpackages:
//
//   - event: Kind tags, Event and Cancellable contracts, Listener
//     registration, the Manager dispatch loop.
//   - sched: Task contract, per-core tick loops, round-robin distribution,
//     the Scheduler façade.
//   - config: defaults, TOML file, and environment configuration.
//   - observability/prometheus: a metrics exporter covering both worker
//     families.
package tempest
