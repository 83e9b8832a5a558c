package core

import (
	"iter"
	"strings"
	"sync/atomic"
	"time"
)

// Process-wide counters across all Library instances, zero at startup.
var (
	totalBooks   atomic.Int64
	totalMembers atomic.Int64
)

// TotalBookCount returns the number of books added to any Library in this process.
func TotalBookCount() int {
	return int(totalBooks.Load())
}

// TotalMemberCount returns the number of members added to any Library in this process.
func TotalMemberCount() int {
	return int(totalMembers.Load())
}

// NewBook carries the already typed input for Library.AddBook.
// Detail is the fiction type for VariantFiction and the subject for VariantNonFiction; it is ignored otherwise.
type NewBook struct {
	ID              BookIDString
	Title           string
	Author          string
	Genre           string
	PublicationYear int
	Variant         Variant
	Detail          string
}

// Library is the aggregate that owns all books and members and mediates every state change.
//
// Every operation is split into a Decide step, which runs all checks and yields a Change without
// writing, and Commit, which applies it. A failed operation leaves no trace in the catalog.
// The direct operations (AddBook, CheckoutBook, ...) decide and commit at once and record the
// DomainEvent, successful or not, which the caller collects with TakeRecordedEvents.
type Library struct {
	name    string
	address string

	books       map[BookIDString]*Book
	bookOrder   []BookIDString
	members     map[MemberIDString]*Member
	memberOrder []MemberIDString

	clock    func() time.Time
	recorded DomainEvents
}

// Option configures a Library.
type Option func(*Library)

// WithClock sets the time source used for the publication year rule and event timestamps.
func WithClock(clock func() time.Time) Option {
	return func(l *Library) {
		l.clock = clock
	}
}

// NewLibrary creates an empty Library.
func NewLibrary(name string, address string, opts ...Option) *Library {
	l := &Library{
		name:    name,
		address: address,
		books:   make(map[BookIDString]*Book),
		members: make(map[MemberIDString]*Member),
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Name returns the library name.
func (l *Library) Name() string { return l.name }

// Address returns the library address.
func (l *Library) Address() string { return l.address }

// BookCount returns the number of books in this library.
func (l *Library) BookCount() int { return len(l.books) }

// MemberCount returns the number of members of this library.
func (l *Library) MemberCount() int { return len(l.members) }

// Change is an operation decided against the library but not yet applied to it.
//
// Event describes the operation, Err is non-nil for a rejected operation. A rejected Change
// carries no state transition, so committing it is a no-op.
type Change struct {
	event DomainEvent
	err   error
	apply func()
}

// Event returns the event describing the decided operation.
func (c Change) Event() DomainEvent { return c.event }

// Err returns the core error of a rejected operation, or nil.
func (c Change) Err() error { return c.err }

func rejected(event DomainEvent, err error) Change {
	return Change{event: event, err: err}
}

// Commit applies a Change to the library.
//
// The Change must have been decided against the current state: no other change may be committed
// between deciding and committing it.
func (l *Library) Commit(change Change) {
	if change.apply != nil {
		change.apply()
	}
}

func (l *Library) commitAndRecord(change Change) error {
	l.Commit(change)
	l.record(change.event)

	return change.err
}

// AddBook validates the input and adds a new, available book to the catalog.
//
// Errors: ErrInvalidInput for a blank or duplicate id and for a publication year after the current year.
func (l *Library) AddBook(input NewBook) error {
	return l.commitAndRecord(l.DecideAddBook(input))
}

// DecideAddBook runs the checks of AddBook without changing the library.
func (l *Library) DecideAddBook(input NewBook) Change {
	now := l.clock()

	if err := l.validateNewBook(input, now); err != nil {
		return rejected(BuildAddingBookFailed(input.ID, err.Error(), now), err)
	}

	book := &Book{
		id:              input.ID,
		title:           input.Title,
		author:          input.Author,
		genre:           input.Genre,
		publicationYear: input.PublicationYear,
		isAvailable:     true,
		variant:         input.Variant,
	}

	switch input.Variant {
	case VariantFiction, VariantNonFiction:
		book.detail = input.Detail
	case VariantStandard:
		// no extra attribute
	default:
		book.variant = VariantStandard
	}

	return Change{
		event: BuildBookAddedToCatalog(*book, now),
		apply: func() {
			l.books[book.id] = book
			l.bookOrder = append(l.bookOrder, book.id)
			totalBooks.Add(1)
		},
	}
}

func (l *Library) validateNewBook(input NewBook, now time.Time) error {
	if strings.TrimSpace(input.ID) == "" {
		return invalidInput("book id must not be blank")
	}

	if _, exists := l.books[input.ID]; exists {
		return invalidInput("book with id %q already exists", input.ID)
	}

	if input.PublicationYear > now.Year() {
		return invalidInput("publication year %d is in the future", input.PublicationYear)
	}

	return nil
}

// AddMember validates the input and registers a new member with no borrowed books.
//
// Errors: ErrInvalidInput for a blank or duplicate id and for a malformed email address.
func (l *Library) AddMember(memberID MemberIDString, name string, email string) error {
	return l.commitAndRecord(l.DecideAddMember(memberID, name, email))
}

// DecideAddMember runs the checks of AddMember without changing the library.
func (l *Library) DecideAddMember(memberID MemberIDString, name string, email string) Change {
	now := l.clock()

	if err := l.validateNewMember(memberID, email); err != nil {
		return rejected(BuildRegisteringMemberFailed(memberID, err.Error(), now), err)
	}

	return Change{
		event: BuildMemberRegistered(memberID, name, email, now),
		apply: func() {
			l.members[memberID] = &Member{
				id:    memberID,
				name:  name,
				email: email,
			}
			l.memberOrder = append(l.memberOrder, memberID)
			totalMembers.Add(1)
		},
	}
}

func (l *Library) validateNewMember(memberID MemberIDString, email string) error {
	if strings.TrimSpace(memberID) == "" {
		return invalidInput("member id must not be blank")
	}

	if _, exists := l.members[memberID]; exists {
		return invalidInput("member with id %q already exists", memberID)
	}

	return ValidateEmail(email)
}

// CheckoutBook lends an available book to a member.
//
// Checks, in this order: the book exists (ErrBookNotFound), the member exists (ErrMemberNotFound),
// the book is available (ErrBookNotAvailable), the member holds fewer than MaxBooksPerMember books
// (ErrMaxBooksExceeded). Either both the book and the member change or neither does.
func (l *Library) CheckoutBook(bookID BookIDString, memberID MemberIDString) error {
	return l.commitAndRecord(l.DecideCheckoutBook(bookID, memberID))
}

// DecideCheckoutBook runs the checks of CheckoutBook without changing the library.
func (l *Library) DecideCheckoutBook(bookID BookIDString, memberID MemberIDString) Change {
	now := l.clock()

	book, member, err := l.lookup(bookID, memberID)
	if err == nil {
		err = book.canCheckout()
	}

	if err == nil {
		err = member.canBorrow()
	}

	if err != nil {
		return rejected(BuildCheckingOutBookFailed(bookID, memberID, err.Error(), now), err)
	}

	return Change{
		event: BuildBookCheckedOut(bookID, memberID, now),
		apply: func() {
			book.checkout()
			member.borrowBook(bookID)
		},
	}
}

// ReturnBook takes a book back from the member who borrowed it.
//
// Checks, in this order: the book exists (ErrBookNotFound), the member exists (ErrMemberNotFound),
// the member holds the book (ErrBookNotBorrowed, which also matches ErrBookNotFound).
func (l *Library) ReturnBook(bookID BookIDString, memberID MemberIDString) error {
	return l.commitAndRecord(l.DecideReturnBook(bookID, memberID))
}

// DecideReturnBook runs the checks of ReturnBook without changing the library.
func (l *Library) DecideReturnBook(bookID BookIDString, memberID MemberIDString) Change {
	now := l.clock()

	book, member, err := l.lookup(bookID, memberID)
	if err == nil {
		err = member.canReturn(bookID)
	}

	if err != nil {
		return rejected(BuildReturningBookFailed(bookID, memberID, err.Error(), now), err)
	}

	return Change{
		event: BuildBookReturned(bookID, memberID, now),
		apply: func() {
			member.returnBook(bookID)
			book.returnToLibrary()
		},
	}
}

func (l *Library) lookup(bookID BookIDString, memberID MemberIDString) (*Book, *Member, error) {
	book, ok := l.books[bookID]
	if !ok {
		return nil, nil, bookNotFound(bookID)
	}

	member, ok := l.members[memberID]
	if !ok {
		return nil, nil, memberNotFound(memberID)
	}

	return book, member, nil
}

// Book returns a snapshot of the book with the given id.
func (l *Library) Book(bookID BookIDString) (Book, error) {
	book, ok := l.books[bookID]
	if !ok {
		return Book{}, bookNotFound(bookID)
	}

	return *book, nil
}

// Member returns a snapshot of the member with the given id.
func (l *Library) Member(memberID MemberIDString) (Member, error) {
	member, ok := l.members[memberID]
	if !ok {
		return Member{}, memberNotFound(memberID)
	}

	snapshot := *member
	snapshot.booksBorrowed = member.BooksBorrowed()

	return snapshot, nil
}

// Books returns snapshots of all books in insertion order.
func (l *Library) Books() []Book {
	books := make([]Book, 0, len(l.bookOrder))
	for book := range l.allBooks() {
		books = append(books, book)
	}

	return books
}

// Members returns snapshots of all members in insertion order.
func (l *Library) Members() []Member {
	members := make([]Member, 0, len(l.memberOrder))
	for _, id := range l.memberOrder {
		member, _ := l.Member(id)
		members = append(members, member)
	}

	return members
}

// AvailableBooks yields the books that are not checked out, in insertion order.
// The sequence is evaluated lazily and each range over it starts from the beginning.
func (l *Library) AvailableBooks() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for book := range l.allBooks() {
			if !book.isAvailable {
				continue
			}

			if !yield(book) {
				return
			}
		}
	}
}

func (l *Library) allBooks() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for _, id := range l.bookOrder {
			if !yield(*l.books[id]) {
				return
			}
		}
	}
}

// TakeRecordedEvents returns the events recorded since the last call and clears them.
func (l *Library) TakeRecordedEvents() DomainEvents {
	recorded := l.recorded
	l.recorded = nil

	return recorded
}

func (l *Library) record(event DomainEvent) {
	l.recorded = append(l.recorded, event)
}
