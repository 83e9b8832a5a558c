package core

import (
	"time"
)

// BookCheckedOutEventType is the event type identifier.
const BookCheckedOutEventType = "BookCheckedOut"

// BookCheckedOut represents when a book is checked out to a member.
type BookCheckedOut struct {
	BookID     BookIDString
	MemberID   MemberIDString
	OccurredAt OccurredAtTS
}

// BuildBookCheckedOut creates a new BookCheckedOut event.
func BuildBookCheckedOut(bookID BookIDString, memberID MemberIDString, occurredAt time.Time) BookCheckedOut {
	return BookCheckedOut{
		BookID:     bookID,
		MemberID:   memberID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCheckedOut) EventType() string {
	return BookCheckedOutEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCheckedOut) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCheckedOut) IsErrorEvent() bool {
	return false
}
