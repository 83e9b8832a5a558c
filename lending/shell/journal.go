package shell

import (
	"context"

	"github.com/google/uuid"

	"github.com/librarydesk/lendingdesk/eventstore"
	"github.com/librarydesk/lendingdesk/lending/core"
)

// RunAndJournal reads the journal position of filter, decides an operation against the library,
// appends the decided event, and only then commits the change to the library.
//
// Either the operation is applied and journaled, or neither happens: if the append fails the library
// is left untouched and the journal error is returned. A rejected operation is journaled as its
// failure event and its core error is returned unchanged.
func RunAndJournal(
	ctx context.Context,
	journal Journal,
	library *core.Library,
	filter eventstore.Filter,
	decide func(*core.Library) core.Change,
) (HandlerResult, error) {

	if err := ctx.Err(); err != nil {
		return HandlerResult{}, err
	}

	_, maxSequenceNumber, err := journal.Query(ctx, filter)
	if err != nil {
		return HandlerResult{}, err
	}

	change := decide(library)

	messageID := uuid.New()
	storableEvent, err := StorableEventFrom(change.Event(), BuildEventMetadata(messageID, messageID, messageID))
	if err != nil {
		return HandlerResult{}, err
	}

	if err = journal.Append(ctx, filter, maxSequenceNumber, storableEvent); err != nil {
		return HandlerResult{}, err
	}

	library.Commit(change)

	if change.Err() != nil {
		return NewRejectedResult(1), change.Err()
	}

	return NewSuccessResult(1), nil
}
