package searchbooks

import (
	"errors"
	"fmt"
)

const (
	queryType = "SearchBooks"
)

// ErrUnknownSearchField is returned for a Field other than ByTitle or ByAuthor.
var ErrUnknownSearchField = errors.New("unknown search field")

// Field selects the book attribute a search matches against.
type Field string

// Searchable fields.
const (
	ByTitle  Field = "title"
	ByAuthor Field = "author"
)

// Query represents the intent to search the catalog.
type Query struct {
	Field Field
	Term  string
}

// BuildQuery creates a new Query with the provided field and search term.
func BuildQuery(field Field, term string) Query {
	return Query{
		Field: field,
		Term:  term,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

func (q Query) validate() error {
	switch q.Field {
	case ByTitle, ByAuthor:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSearchField, q.Field)
	}
}
