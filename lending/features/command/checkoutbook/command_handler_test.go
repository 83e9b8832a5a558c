package checkoutbook_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarydesk/lendingdesk/eventstore/memengine"
	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/features/command/checkoutbook"
	"github.com/librarydesk/lendingdesk/lending/shell"
)

func givenLibraryWithBooksAndMembers(t *testing.T, bookCount int) *core.Library {
	t.Helper()

	library := core.NewLibrary("Test Library", "Test St")
	for i := 1; i <= bookCount; i++ {
		require.NoError(t, library.AddBook(core.NewBook{
			ID:              fmt.Sprintf("B%03d", i),
			Title:           fmt.Sprintf("Book %d", i),
			Author:          "Author",
			Genre:           "Fiction",
			PublicationYear: 2000,
			Variant:         core.VariantStandard,
		}))
	}
	require.NoError(t, library.AddMember("M001", "John Smith", "john@example.com"))
	require.NoError(t, library.AddMember("M002", "Jane Doe", "jane@example.com"))
	library.TakeRecordedEvents()

	return library
}

func setupTestEnvironment(t *testing.T, bookCount int) (*core.Library, memengine.EventStore, checkoutbook.CommandHandler) {
	t.Helper()

	library := givenLibraryWithBooksAndMembers(t, bookCount)
	journal, err := memengine.NewEventStore()
	require.NoError(t, err)

	return library, journal, checkoutbook.NewCommandHandler(library, journal)
}

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	library, journal, handler := setupTestEnvironment(t, 1)

	// act
	result, err := handler.Handle(context.Background(), checkoutbook.BuildCommand("B001", "M001"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, shell.NewSuccessResult(1), result)

	book, err := library.Book("B001")
	require.NoError(t, err)
	assert.False(t, book.IsAvailable())

	member, err := library.Member("M001")
	require.NoError(t, err)
	assert.Equal(t, []string{"B001"}, member.BooksBorrowed())

	storableEvents, _, err := journal.Query(context.Background(), checkoutbook.BuildEventFilter("B001", "M001"))
	require.NoError(t, err)
	envelopes, err := shell.EventEnvelopesFrom(storableEvents)
	require.NoError(t, err)
	require.Len(t, envelopes, 1)
	assert.Equal(t, core.BookCheckedOutEventType, envelopes[0].DomainEvent.EventType())
	assert.Equal(t, uint(1), envelopes[0].SequenceNumber)
}

func Test_CommandHandler_Handle_Error_BookAlreadyCheckedOut(t *testing.T) {
	// arrange
	library, _, handler := setupTestEnvironment(t, 1)
	_, err := handler.Handle(context.Background(), checkoutbook.BuildCommand("B001", "M001"))
	require.NoError(t, err)

	// act
	result, err := handler.Handle(context.Background(), checkoutbook.BuildCommand("B001", "M002"))

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotAvailable)
	assert.True(t, result.Rejected)

	member, memberErr := library.Member("M002")
	require.NoError(t, memberErr)
	assert.Empty(t, member.BooksBorrowed())
}

func Test_CommandHandler_Handle_Error_MaxBooksExceeded(t *testing.T) {
	// arrange
	library, journal, handler := setupTestEnvironment(t, core.MaxBooksPerMember+1)
	for i := 1; i <= core.MaxBooksPerMember; i++ {
		_, err := handler.Handle(context.Background(), checkoutbook.BuildCommand(fmt.Sprintf("B%03d", i), "M001"))
		require.NoError(t, err)
	}

	// act
	lastBookID := fmt.Sprintf("B%03d", core.MaxBooksPerMember+1)
	result, err := handler.Handle(context.Background(), checkoutbook.BuildCommand(lastBookID, "M001"))

	// assert
	assert.ErrorIs(t, err, core.ErrMaxBooksExceeded)
	assert.Equal(t, shell.NewRejectedResult(1), result)

	book, bookErr := library.Book(lastBookID)
	require.NoError(t, bookErr)
	assert.True(t, book.IsAvailable(), "a refused checkout must leave the book available")
	assert.Equal(t, core.MaxBooksPerMember+1, journal.Len())
}

func Test_CommandHandler_Handle_Error_CheckOrder(t *testing.T) {
	testCases := []struct {
		name        string
		bookID      string
		memberID    string
		expectedErr error
		offendingID string
	}{
		{name: "unknown book and unknown member", bookID: "B999", memberID: "M999", expectedErr: core.ErrBookNotFound, offendingID: "B999"},
		{name: "unknown member", bookID: "B001", memberID: "M999", expectedErr: core.ErrMemberNotFound, offendingID: "M999"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			_, journal, handler := setupTestEnvironment(t, 1)

			// act
			_, err := handler.Handle(context.Background(), checkoutbook.BuildCommand(tc.bookID, tc.memberID))

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.ErrorContains(t, err, tc.offendingID)

			storableEvents, _, queryErr := journal.Query(context.Background(), checkoutbook.BuildEventFilter(tc.bookID, tc.memberID))
			require.NoError(t, queryErr)
			require.Len(t, storableEvents, 1)
			assert.Equal(t, core.CheckingOutBookFailedEventType, storableEvents[0].EventType)
		})
	}
}
