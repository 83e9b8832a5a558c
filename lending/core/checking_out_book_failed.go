package core

import (
	"time"
)

// CheckingOutBookFailedEventType is the event type identifier.
const CheckingOutBookFailedEventType = "CheckingOutBookFailed"

// CheckingOutBookFailed represents when checking out a book to a member was rejected.
type CheckingOutBookFailed struct {
	BookID      BookIDString
	MemberID    MemberIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildCheckingOutBookFailed creates a new CheckingOutBookFailed event.
func BuildCheckingOutBookFailed(
	bookID BookIDString,
	memberID MemberIDString,
	failureInfo string,
	occurredAt time.Time,
) CheckingOutBookFailed {

	return CheckingOutBookFailed{
		BookID:      bookID,
		MemberID:    memberID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e CheckingOutBookFailed) EventType() string {
	return CheckingOutBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CheckingOutBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e CheckingOutBookFailed) IsErrorEvent() bool {
	return true
}
