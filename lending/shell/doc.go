// Package shell is the imperative shell around the lending core.
//
// It maps core domain events to journal storable events and back, attaches event metadata,
// classifies core errors for observability, and holds the helpers that the observable
// command and query wrappers use for metrics, tracing and logging.
package shell
