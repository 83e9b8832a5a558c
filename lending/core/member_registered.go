package core

import (
	"time"
)

// MemberRegisteredEventType is the event type identifier.
const MemberRegisteredEventType = "MemberRegistered"

// MemberRegistered represents when a new member is registered at the library.
type MemberRegistered struct {
	MemberID   MemberIDString
	Name       string
	Email      string
	OccurredAt OccurredAtTS
}

// BuildMemberRegistered creates a new MemberRegistered event.
func BuildMemberRegistered(memberID MemberIDString, name string, email string, occurredAt time.Time) MemberRegistered {
	return MemberRegistered{
		MemberID:   memberID,
		Name:       name,
		Email:      email,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e MemberRegistered) EventType() string {
	return MemberRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e MemberRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e MemberRegistered) IsErrorEvent() bool {
	return false
}
