package addmember

import (
	"github.com/librarydesk/lendingdesk/lending/core"
)

const (
	commandType = "AddMember"
)

// Command represents the intent to register a new member.
type Command struct {
	MemberID core.MemberIDString
	Name     string
	Email    string
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(memberID core.MemberIDString, name string, email string) Command {
	return Command{
		MemberID: memberID,
		Name:     name,
		Email:    email,
	}
}
