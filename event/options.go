package event

import "log/slog"

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used at failure-containment points.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(metrics Metrics) ManagerOption {
	return func(m *Manager) {
		if metrics != nil {
			m.metrics = metrics
		}
	}
}

// WithPanicHandler sets a hook invoked after a recovered handler panic,
// in addition to the Manager's own logging.
func WithPanicHandler(h PanicHandler) ManagerOption {
	return func(m *Manager) {
		m.panicHandler = h
	}
}
