// Package memengine implements the session journal in process memory.
//
// The EventStore keeps every appended eventstore.StorableEvent in append order for the lifetime
// of the process. Query selects events with an eventstore.Filter whose predicates are matched
// against top-level fields of the JSON payload. Append applies the same optimistic concurrency
// check as a database-backed event store: the caller passes the max sequence number it saw on
// Query, and the append is rejected with eventstore.ErrConcurrencyConflict if events matching
// the filter were appended in the meantime.
package memengine
