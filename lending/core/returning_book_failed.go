package core

import (
	"time"
)

// ReturningBookFailedEventType is the event type identifier.
const ReturningBookFailedEventType = "ReturningBookFailed"

// ReturningBookFailed represents when a book return was rejected.
type ReturningBookFailed struct {
	BookID      BookIDString
	MemberID    MemberIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReturningBookFailed creates a new ReturningBookFailed event.
func BuildReturningBookFailed(
	bookID BookIDString,
	memberID MemberIDString,
	failureInfo string,
	occurredAt time.Time,
) ReturningBookFailed {

	return ReturningBookFailed{
		BookID:      bookID,
		MemberID:    memberID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e ReturningBookFailed) EventType() string {
	return ReturningBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e ReturningBookFailed) IsErrorEvent() bool {
	return true
}
