package checkoutbook

import (
	"context"

	"github.com/librarydesk/lendingdesk/eventstore"
	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/shell"
)

// CommandHandler checks a book out to a member and journals the outcome.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	library *core.Library
	journal shell.Journal
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(library *core.Library, journal shell.Journal) CommandHandler {
	return CommandHandler{
		library: library,
		journal: journal,
	}
}

// Handle decides the checkout, journals its event, and commits it to the library.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.RunAndJournal(
		ctx,
		h.journal,
		h.library,
		BuildEventFilter(command.BookID, command.MemberID),
		func(library *core.Library) core.Change {
			return library.DecideCheckoutBook(command.BookID, command.MemberID)
		},
	)
}

// BuildEventFilter creates the filter for all lending events
// related to the specified book and member.
func BuildEventFilter(bookID core.BookIDString, memberID core.MemberIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.MemberRegisteredEventType,
			core.BookCheckedOutEventType,
			core.BookReturnedEventType,
			core.CheckingOutBookFailedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID),
			eventstore.P("MemberID", memberID),
		).
		Finalize()
}
