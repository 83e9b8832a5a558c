// Package eventstore provides the abstractions of the lending desk's session journal:
// filters, storable events, and the dependency-free observability interfaces shared by
// the journal engine and the lending shell.
//
// Events are selected with a Filter built from event types and payload predicates:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.BookCheckedOutEventType,
//			core.BookReturnedEventType).
//		AndAnyPredicateOf(eventstore.P("BookID", "B001")).
//		Finalize()
//
//	events, maxSeq, err := journal.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	err = journal.Append(ctx, filter, maxSeq, newEvent)
//
// Append fails with ErrConcurrencyConflict when another event matching the same filter
// was appended after the Query that produced maxSeq.
//
// The engine lives in package memengine; it keeps events for the lifetime of the process only.
package eventstore
