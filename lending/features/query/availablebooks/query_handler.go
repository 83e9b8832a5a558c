package availablebooks

import (
	"context"

	"github.com/librarydesk/lendingdesk/lending/core"
)

// QueryHandler answers the Available Books query from the library state.
type QueryHandler struct {
	library *core.Library
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(library *core.Library) QueryHandler {
	return QueryHandler{
		library: library,
	}
}

// Handle collects the available books in insertion order.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (AvailableBooks, error) {
	if err := ctx.Err(); err != nil {
		return AvailableBooks{}, err
	}

	result := AvailableBooks{Books: []core.Book{}}
	for book := range h.library.AvailableBooks() {
		result.Books = append(result.Books, book)
	}

	return result, nil
}
