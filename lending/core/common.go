package core

import (
	"time"
)

// Plain alias types instead of full value objects, same as for the event payloads ...

// BookIDString represents a book identifier.
type BookIDString = string

// MemberIDString represents a member identifier.
type MemberIDString = string

// EventTypeString represents the type identifier of a domain event.
type EventTypeString = string

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
