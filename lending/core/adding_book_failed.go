package core

import (
	"time"
)

// AddingBookFailedEventType is the event type identifier.
const AddingBookFailedEventType = "AddingBookFailed"

// AddingBookFailed represents when a book could not be added to the catalog.
type AddingBookFailed struct {
	BookID      BookIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildAddingBookFailed creates a new AddingBookFailed event.
func BuildAddingBookFailed(bookID BookIDString, failureInfo string, occurredAt time.Time) AddingBookFailed {
	return AddingBookFailed{
		BookID:      bookID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e AddingBookFailed) EventType() string {
	return AddingBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AddingBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e AddingBookFailed) IsErrorEvent() bool {
	return true
}
