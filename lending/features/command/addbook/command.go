package addbook

import (
	"github.com/librarydesk/lendingdesk/lending/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a book to the catalog.
// Detail is the fiction type of a fiction book or the subject of a non-fiction book.
type Command struct {
	BookID          core.BookIDString
	Title           string
	Author          string
	Genre           string
	PublicationYear int
	Variant         core.Variant
	Detail          string
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookID core.BookIDString,
	title string,
	author string,
	genre string,
	publicationYear int,
	variant core.Variant,
	detail string,
) Command {

	return Command{
		BookID:          bookID,
		Title:           title,
		Author:          author,
		Genre:           genre,
		PublicationYear: publicationYear,
		Variant:         variant,
		Detail:          detail,
	}
}

func (c Command) toNewBook() core.NewBook {
	return core.NewBook{
		ID:              c.BookID,
		Title:           c.Title,
		Author:          c.Author,
		Genre:           c.Genre,
		PublicationYear: c.PublicationYear,
		Variant:         c.Variant,
		Detail:          c.Detail,
	}
}
