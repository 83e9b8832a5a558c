package core

import (
	"errors"
	"fmt"
)

// The five failure kinds every Library operation reports. Callers match them with errors.Is.
var (
	// ErrBookNotFound is returned when a referenced book id has no matching entry.
	ErrBookNotFound = errors.New("book not found")

	// ErrMemberNotFound is returned when a referenced member id has no matching entry.
	ErrMemberNotFound = errors.New("member not found")

	// ErrBookNotAvailable is returned when a checkout is attempted on an already checked out book.
	ErrBookNotAvailable = errors.New("book is not available")

	// ErrMaxBooksExceeded is returned when a member who already holds MaxBooksPerMember books tries to borrow another.
	ErrMaxBooksExceeded = errors.New("maximum borrowing limit reached")

	// ErrInvalidInput is returned for duplicate ids, malformed emails, future publication years and other bad input.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrBookNotBorrowed is returned when a member returns a book they do not hold.
// It wraps ErrBookNotFound, so errors.Is(err, ErrBookNotFound) holds as well.
var ErrBookNotBorrowed = fmt.Errorf("%w: book is not borrowed by this member", ErrBookNotFound)

func bookNotFound(bookID string) error {
	return fmt.Errorf("%w: %q", ErrBookNotFound, bookID)
}

func memberNotFound(memberID string) error {
	return fmt.Errorf("%w: %q", ErrMemberNotFound, memberID)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func bookNotAvailable(bookID string) error {
	return fmt.Errorf("%w: %q is checked out", ErrBookNotAvailable, bookID)
}

func maxBooksExceeded(memberID string) error {
	return fmt.Errorf("%w: member %q already holds %d books", ErrMaxBooksExceeded, memberID, MaxBooksPerMember)
}

func bookNotBorrowed(bookID string, memberID string) error {
	return fmt.Errorf("%w: %q by %q", ErrBookNotBorrowed, bookID, memberID)
}
