package core

import (
	"time"
)

// BookReturnedEventType is the event type identifier.
const BookReturnedEventType = "BookReturned"

// BookReturned represents when a member returns a book to the library.
type BookReturned struct {
	BookID     BookIDString
	MemberID   MemberIDString
	OccurredAt OccurredAtTS
}

// BuildBookReturned creates a new BookReturned event.
func BuildBookReturned(bookID BookIDString, memberID MemberIDString, occurredAt time.Time) BookReturned {
	return BookReturned{
		BookID:     bookID,
		MemberID:   memberID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookReturned) EventType() string {
	return BookReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookReturned) IsErrorEvent() bool {
	return false
}
