package searchbooks

import (
	"context"

	"github.com/librarydesk/lendingdesk/lending/core"
)

// QueryHandler answers the Search Books query from the library state.
type QueryHandler struct {
	library *core.Library
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(library *core.Library) QueryHandler {
	return QueryHandler{
		library: library,
	}
}

// Handle runs the title or author search.
func (h QueryHandler) Handle(ctx context.Context, query Query) (SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return SearchResults{}, err
	}

	if err := query.validate(); err != nil {
		return SearchResults{}, err
	}

	var books []core.Book
	switch query.Field {
	case ByTitle:
		books = h.library.SearchBooksByTitle(query.Term)
	case ByAuthor:
		books = h.library.SearchBooksByAuthor(query.Term)
	}

	return SearchResults{
		Field: query.Field,
		Term:  query.Term,
		Books: books,
	}, nil
}
