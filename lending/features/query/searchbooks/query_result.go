package searchbooks

import (
	"github.com/librarydesk/lendingdesk/lending/core"
)

// SearchResults represents the books matching a search, in insertion order.
type SearchResults struct {
	Field Field
	Term  string
	Books []core.Book
}

// Count returns the number of matching books.
func (r SearchResults) Count() int {
	return len(r.Books)
}
