// Package oteladapters connects the dependency-free observability interfaces of package eventstore
// to OpenTelemetry.
//
//   - SlogBridgeLogger and OTelLogger implement eventstore.ContextualLogger
//   - MetricsCollector implements eventstore.ContextualMetricsCollector
//   - TracingCollector implements eventstore.TracingCollector
//
// The lending desk uses them when observability is enabled; otherwise it falls back to a plain slog logger.
package oteladapters
