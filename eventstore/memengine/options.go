package memengine

import (
	"github.com/librarydesk/lendingdesk/eventstore"
)

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
//
// Debug level: matching details per operation
// Info level: event counts, durations, concurrency conflicts
// Error level: failures that cause an operation to fail.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the EventStore.
// It takes precedence over a logger set with WithLogger.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(es *EventStore) error {
		es.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the EventStore.
// It receives query/append durations, event counts, and concurrency conflicts.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		es.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the EventStore.
func WithTracing(collector eventstore.TracingCollector) Option {
	return func(es *EventStore) error {
		es.tracingCollector = collector
		return nil
	}
}
