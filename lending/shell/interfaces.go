package shell

import (
	"context"

	"github.com/librarydesk/lendingdesk/eventstore"
)

// QueriesEvents is the read side of the journal.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// Journal is the part of the journal engine the command handlers need.
type Journal interface {
	QueriesEvents
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		event eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// Command is implemented by all command types. CommandType must work on the zero value.
type Command interface {
	CommandType() string
}

// CommandHandler handles one command type against the library and the journal.
// It returns the core error unchanged when a lending rule refuses the command.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query is implemented by all query types. QueryType must work on the zero value.
type Query interface {
	QueryType() string
}

// QueryResult is implemented by all query results.
type QueryResult interface {
	// Count is the number of entries in the result, recorded as result_count.
	Count() int
}

// QueryHandler answers one query type.
type QueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
