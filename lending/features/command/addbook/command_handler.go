package addbook

import (
	"context"

	"github.com/librarydesk/lendingdesk/eventstore"
	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/shell"
)

// CommandHandler adds books to the library and journals the outcome.
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

// Handle adds the book and journals the decided event.
// A refused command returns a rejected HandlerResult and the core error, e.g. core.ErrInvalidInput.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.RunAndJournal(
		ctx,
		h.journal,
		h.library,
		BuildEventFilter(command.BookID),
		func(library *core.Library) core.Change {
			return library.DecideAddBook(command.toNewBook())
		},
	)
}

// BuildEventFilter creates the filter for all journal events about adding the given book.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.AddingBookFailedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID),
		).
		Finalize()
}
