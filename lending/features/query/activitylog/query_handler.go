package activitylog

import (
	"context"

	"github.com/librarydesk/lendingdesk/eventstore"
	"github.com/librarydesk/lendingdesk/lending/shell"
)

// QueryHandler answers the Activity Log query from the journal.
type QueryHandler struct {
	journal shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(journal shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		journal: journal,
	}
}

// Handle queries the journal and converts the stored events back to domain events.
func (h QueryHandler) Handle(ctx context.Context, query Query) (ActivityLog, error) {
	if query.BookID == "" && query.MemberID == "" {
		return ActivityLog{}, ErrNoSubject
	}

	storableEvents, _, err := h.journal.Query(ctx, BuildEventFilter(query))
	if err != nil {
		return ActivityLog{}, err
	}

	envelopes, err := shell.EventEnvelopesFrom(storableEvents)
	if err != nil {
		return ActivityLog{}, err
	}

	return ActivityLog{
		BookID:   query.BookID,
		MemberID: query.MemberID,
		Entries:  envelopes,
	}, nil
}

// BuildEventFilter creates the filter for all events mentioning the book or the member of the query.
// An empty id contributes no predicate.
func BuildEventFilter(query Query) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(
			eventstore.P("BookID", query.BookID),
			eventstore.P("MemberID", query.MemberID),
		).
		Finalize()
}
