package addmember_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarydesk/lendingdesk/eventstore/memengine"
	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/features/command/addmember"
)

func setupTestEnvironment(t *testing.T) (*core.Library, memengine.EventStore, addmember.CommandHandler) {
	t.Helper()

	library := core.NewLibrary("Test Library", "Test St")
	journal, err := memengine.NewEventStore()
	require.NoError(t, err)

	return library, journal, addmember.NewCommandHandler(library, journal)
}

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	library, journal, handler := setupTestEnvironment(t)

	// act
	result, err := handler.Handle(context.Background(), addmember.BuildCommand("M001", "John Smith", "john@example.com"))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Rejected)

	member, err := library.Member("M001")
	require.NoError(t, err)
	assert.Empty(t, member.BooksBorrowed())

	storableEvents, _, err := journal.Query(context.Background(), addmember.BuildEventFilter("M001"))
	require.NoError(t, err)
	require.Len(t, storableEvents, 1)
	assert.Equal(t, core.MemberRegisteredEventType, storableEvents[0].EventType)
}

func Test_CommandHandler_Handle_Error_InvalidInput(t *testing.T) {
	testCases := []struct {
		name    string
		command addmember.Command
	}{
		{name: "email without at", command: addmember.BuildCommand("M002", "Jane", "jane.example.com")},
		{name: "email without dot in domain", command: addmember.BuildCommand("M002", "Jane", "jane@example")},
		{name: "duplicate id", command: addmember.BuildCommand("M001", "Jane", "jane@example.com")},
		{name: "blank id", command: addmember.BuildCommand(" ", "Jane", "jane@example.com")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			library, journal, handler := setupTestEnvironment(t)
			_, err := handler.Handle(context.Background(), addmember.BuildCommand("M001", "John", "john@example.com"))
			require.NoError(t, err)

			// act
			result, err := handler.Handle(context.Background(), tc.command)

			// assert
			assert.ErrorIs(t, err, core.ErrInvalidInput)
			assert.True(t, result.Rejected)
			assert.Equal(t, 1, library.MemberCount())
			assert.Equal(t, 2, journal.Len(), "the failure must be journaled")
		})
	}
}
