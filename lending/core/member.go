package core

import (
	"slices"
	"strings"
)

// MaxBooksPerMember is the borrowing limit of a single member.
const MaxBooksPerMember = 3

// Member is one registered patron and the ids of the books they currently hold.
type Member struct {
	id            MemberIDString
	name          string
	email         string
	booksBorrowed []BookIDString
}

// MemberSummary is the structured record a renderer turns into display lines.
type MemberSummary struct {
	ID            MemberIDString
	Name          string
	Email         string
	BooksBorrowed []BookIDString
}

// ID returns the member id.
func (m Member) ID() MemberIDString { return m.id }

// Name returns the member name.
func (m Member) Name() string { return m.name }

// Email returns the member email address.
func (m Member) Email() string { return m.email }

// BooksBorrowed returns a copy of the ids of the books the member holds.
func (m Member) BooksBorrowed() []BookIDString {
	return slices.Clone(m.booksBorrowed)
}

// HasBorrowed reports whether the member currently holds the given book.
func (m Member) HasBorrowed(bookID BookIDString) bool {
	return slices.Contains(m.booksBorrowed, bookID)
}

// Summary produces the display record.
func (m Member) Summary() MemberSummary {
	return MemberSummary{
		ID:            m.id,
		Name:          m.name,
		Email:         m.email,
		BooksBorrowed: m.BooksBorrowed(),
	}
}

func (m *Member) canBorrow() error {
	if len(m.booksBorrowed) >= MaxBooksPerMember {
		return maxBooksExceeded(m.id)
	}

	return nil
}

func (m *Member) borrowBook(bookID BookIDString) {
	m.booksBorrowed = append(m.booksBorrowed, bookID)
}

func (m *Member) canReturn(bookID BookIDString) error {
	if !m.HasBorrowed(bookID) {
		return bookNotBorrowed(bookID, m.id)
	}

	return nil
}

func (m *Member) returnBook(bookID BookIDString) {
	m.booksBorrowed = slices.DeleteFunc(m.booksBorrowed, func(id BookIDString) bool { return id == bookID })
}

// ValidateEmail checks the local@domain shape: exactly one "@", text on both sides,
// and at least one "." in the domain part.
func ValidateEmail(email string) error {
	if strings.Count(email, "@") != 1 {
		return invalidInput("email %q must contain exactly one @", email)
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" || domain == "" {
		return invalidInput("email %q needs text on both sides of @", email)
	}

	if !strings.Contains(domain, ".") {
		return invalidInput("email %q has no . in its domain", email)
	}

	return nil
}
