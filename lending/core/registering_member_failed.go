package core

import (
	"time"
)

// RegisteringMemberFailedEventType is the event type identifier.
const RegisteringMemberFailedEventType = "RegisteringMemberFailed"

// RegisteringMemberFailed represents when a member could not be registered.
type RegisteringMemberFailed struct {
	MemberID    MemberIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildRegisteringMemberFailed creates a new RegisteringMemberFailed event.
func BuildRegisteringMemberFailed(memberID MemberIDString, failureInfo string, occurredAt time.Time) RegisteringMemberFailed {
	return RegisteringMemberFailed{
		MemberID:    memberID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e RegisteringMemberFailed) EventType() string {
	return RegisteringMemberFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e RegisteringMemberFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e RegisteringMemberFailed) IsErrorEvent() bool {
	return true
}
