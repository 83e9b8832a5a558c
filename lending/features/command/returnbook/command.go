package returnbook

import (
	"github.com/librarydesk/lendingdesk/lending/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to return a borrowed book.
type Command struct {
	BookID   core.BookIDString
	MemberID core.MemberIDString
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, memberID core.MemberIDString) Command {
	return Command{
		BookID:   bookID,
		MemberID: memberID,
	}
}
