package activitylog

import (
	"github.com/librarydesk/lendingdesk/lending/shell"
)

// ActivityLog represents the journal entries matching a Query, oldest first.
type ActivityLog struct {
	BookID   string
	MemberID string
	Entries  shell.EventEnvelopes
}

// Count returns the number of entries.
func (r ActivityLog) Count() int {
	return len(r.Entries)
}

// Failures returns the number of entries recording a refused operation.
func (r ActivityLog) Failures() int {
	failures := 0
	for _, entry := range r.Entries {
		if entry.DomainEvent.IsErrorEvent() {
			failures++
		}
	}

	return failures
}
