package event

// Metrics receives dispatch observations. Implementations must be safe for
// concurrent use. The Manager defaults to a no-op implementation; a real
// exporter lives in observability/prometheus.
type Metrics interface {
	// RecordDispatch is called once per dispatched event.
	RecordDispatch(kind Kind)

	// RecordHandlerError is called when a handler returns an error.
	RecordHandlerError(kind Kind)

	// RecordHandlerPanic is called when a handler panics.
	RecordHandlerPanic(kind Kind)

	// RecordQueueDepth is called with the pending-event count after
	// enqueue and dequeue operations.
	RecordQueueDepth(depth int)
}

// nopMetrics discards all observations.
type nopMetrics struct{}

func (nopMetrics) RecordDispatch(Kind)     {}
func (nopMetrics) RecordHandlerError(Kind) {}
func (nopMetrics) RecordHandlerPanic(Kind) {}
func (nopMetrics) RecordQueueDepth(int)    {}
