package activitylog

import (
	"errors"
	"strings"

	"github.com/librarydesk/lendingdesk/lending/core"
)

const (
	queryType = "ActivityLog"
)

// ErrNoSubject is returned when neither a book id nor a member id is given.
var ErrNoSubject = errors.New("activity log needs a book id or a member id")

// Query represents the intent to read the journal entries of a book and/or a member.
type Query struct {
	BookID   core.BookIDString
	MemberID core.MemberIDString
}

// BuildQuery creates a new Query. Either id may be empty.
func BuildQuery(bookID core.BookIDString, memberID core.MemberIDString) Query {
	return Query{
		BookID:   strings.TrimSpace(bookID),
		MemberID: strings.TrimSpace(memberID),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
