package addmember

import (
	"context"

	"github.com/librarydesk/lendingdesk/eventstore"
	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/shell"
)

// CommandHandler registers members and journals the outcome.
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

// Handle registers the member and journals the decided event.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.RunAndJournal(
		ctx,
		h.journal,
		h.library,
		BuildEventFilter(command.MemberID),
		func(library *core.Library) core.Change {
			return library.DecideAddMember(command.MemberID, command.Name, command.Email)
		},
	)
}

// BuildEventFilter creates the filter for all journal events about registering the given member.
func BuildEventFilter(memberID core.MemberIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.MemberRegisteredEventType,
			core.RegisteringMemberFailedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("MemberID", memberID),
		).
		Finalize()
}
