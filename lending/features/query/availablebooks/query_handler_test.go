package availablebooks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/features/query/availablebooks"
)

func givenLibrary(t *testing.T, bookIDs ...string) *core.Library {
	t.Helper()

	library := core.NewLibrary("Test Library", "Test St")
	for _, id := range bookIDs {
		require.NoError(t, library.AddBook(core.NewBook{
			ID: id, Title: "Title " + id, Author: "Author", Genre: "Genre", PublicationYear: 2001,
		}))
	}
	require.NoError(t, library.AddMember("M001", "John Smith", "john@example.com"))

	return library
}

func Test_QueryHandler_Handle_ReturnsAvailableBooksInInsertionOrder(t *testing.T) {
	// arrange
	library := givenLibrary(t, "B003", "B001", "B002")
	require.NoError(t, library.CheckoutBook("B001", "M001"))
	handler := availablebooks.NewQueryHandler(library)

	// act
	result, err := handler.Handle(context.Background(), availablebooks.BuildQuery())

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Count())
	assert.Equal(t, "B003", result.Books[0].ID())
	assert.Equal(t, "B002", result.Books[1].ID())
}

func Test_QueryHandler_Handle_EmptyLibrary(t *testing.T) {
	// arrange
	handler := availablebooks.NewQueryHandler(givenLibrary(t))

	// act
	result, err := handler.Handle(context.Background(), availablebooks.BuildQuery())

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count())
	assert.NotNil(t, result.Books)
}

func Test_QueryHandler_Handle_CanceledContext(t *testing.T) {
	// arrange
	handler := availablebooks.NewQueryHandler(givenLibrary(t, "B001"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, err := handler.Handle(ctx, availablebooks.BuildQuery())

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}
