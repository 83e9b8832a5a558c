package eventstore

import (
	"errors"
)

// ErrConcurrencyConflict is returned by Append when events matching the filter were appended
// after the caller's Query, so the expected max sequence number is outdated.
var ErrConcurrencyConflict = errors.New("concurrency error, the expected max sequence number is outdated")

// ErrEmptyEventType is returned when a StorableEvent is built without an event type.
var ErrEmptyEventType = errors.New("event type must not be empty")

// MaxSequenceNumberUint is a type alias for uint, representing the maximum sequence number for a "dynamic event stream".
type MaxSequenceNumberUint = uint
