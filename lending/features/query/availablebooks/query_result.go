package availablebooks

import (
	"github.com/librarydesk/lendingdesk/lending/core"
)

// AvailableBooks represents the query result containing the books that can be checked out.
type AvailableBooks struct {
	Books []core.Book
}

// Count returns the number of available books.
func (r AvailableBooks) Count() int {
	return len(r.Books)
}
