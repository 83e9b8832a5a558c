package core

import (
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a book is added to the library catalog.
type BookAddedToCatalog struct {
	BookID          BookIDString
	Title           string
	Author          string
	Genre           string
	PublicationYear int
	Variant         string
	Detail          string
	OccurredAt      OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(book Book, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		BookID:          book.id,
		Title:           book.title,
		Author:          book.author,
		Genre:           book.genre,
		PublicationYear: book.publicationYear,
		Variant:         string(book.variant),
		Detail:          book.detail,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookAddedToCatalog) EventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAddedToCatalog) IsErrorEvent() bool {
	return false
}
