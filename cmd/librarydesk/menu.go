package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/features/command/addbook"
	"github.com/librarydesk/lendingdesk/lending/features/command/addmember"
	"github.com/librarydesk/lendingdesk/lending/features/command/checkoutbook"
	"github.com/librarydesk/lendingdesk/lending/features/command/returnbook"
	"github.com/librarydesk/lendingdesk/lending/features/query/activitylog"
	"github.com/librarydesk/lendingdesk/lending/features/query/availablebooks"
	"github.com/librarydesk/lendingdesk/lending/features/query/searchbooks"
	"github.com/librarydesk/lendingdesk/lending/shell"
)

// errInputClosed ends the menu loop when stdin runs out.
var errInputClosed = errors.New("input closed")

const (
	choiceExit = iota
	choiceAddBook
	choiceAddMember
	choiceCheckout
	choiceReturn
	choiceListBooks
	choiceListMembers
	choiceSearch
	choiceActivityLog
)

type menu struct {
	desk *desk
	in   *bufio.Scanner
	out  io.Writer
	now  func() time.Time
}

func newMenu(d *desk, in io.Reader, out io.Writer, now func() time.Time) *menu {
	return &menu{
		desk: d,
		in:   bufio.NewScanner(in),
		out:  out,
		now:  now,
	}
}

// run shows the banner and handles one choice per iteration until the librarian exits.
// End of input ends the loop like choosing exit.
func (m *menu) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		printBanner(m.out, m.desk.library)

		input, err := m.prompt(fmt.Sprintf("\nEnter your choice (0-%d): ", choiceActivityLog))
		if err != nil {
			return m.handleInputEnd(err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(input))
		if convErr != nil || choice < choiceExit || choice > choiceActivityLog {
			m.println(fmt.Sprintf("Invalid choice. Please enter a number between 0 and %d.", choiceActivityLog))
			continue
		}

		if choice == choiceExit {
			m.println("Thank you for using the Library Management System.")
			return nil
		}

		if err = m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, errInputClosed) {
				return m.handleInputEnd(err)
			}
			m.println(fmt.Sprintf("An error occurred: %v", err))
		}
	}
}

func (m *menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choiceAddBook:
		return m.addBook(ctx)
	case choiceAddMember:
		return m.addMember(ctx)
	case choiceCheckout:
		return m.checkout(ctx)
	case choiceReturn:
		return m.returnBook(ctx)
	case choiceListBooks:
		printBooks(m.out, "Current Book Collection:", m.desk.library.Books(), "No books found.")
		return nil
	case choiceListMembers:
		m.listMembers()
		return nil
	case choiceSearch:
		return m.search(ctx)
	case choiceActivityLog:
		return m.activityLog(ctx)
	default:
		return nil
	}
}

func (m *menu) addBook(ctx context.Context) error {
	fields, err := m.promptAll("Enter book ID: ", "Enter title: ", "Enter author: ", "Enter genre: ", "Enter publication year: ")
	if err != nil {
		return err
	}
	bookID, title, author, genre := fields[0], fields[1], fields[2], fields[3]

	year, convErr := strconv.Atoi(strings.TrimSpace(fields[4]))
	if convErr != nil {
		m.println("Invalid year. Using current year.")
		year = m.now().Year()
	}

	bookType, err := m.prompt("Enter book type (F for Fiction, N for Non-Fiction): ")
	if err != nil {
		return err
	}

	variant, known := core.ParseVariant(bookType)
	var detail string
	switch {
	case !known:
		m.println("Invalid book type. Adding as base Book type.")
	case variant == core.VariantFiction:
		if detail, err = m.prompt("Enter fiction type: "); err != nil {
			return err
		}
	case variant == core.VariantNonFiction:
		if detail, err = m.prompt("Enter subject: "); err != nil {
			return err
		}
	}

	_, err = m.desk.addBook.Handle(ctx, addbook.BuildCommand(bookID, title, author, genre, year, variant, detail))

	return m.report(err, fmt.Sprintf("Book %s added successfully.", bookID), "Could not add book")
}

func (m *menu) addMember(ctx context.Context) error {
	fields, err := m.promptAll("Enter member ID: ", "Enter name: ", "Enter email: ")
	if err != nil {
		return err
	}

	_, err = m.desk.addMember.Handle(ctx, addmember.BuildCommand(fields[0], fields[1], fields[2]))

	return m.report(err, fmt.Sprintf("Member %s added successfully.", fields[0]), "Invalid member data")
}

func (m *menu) checkout(ctx context.Context) error {
	fields, err := m.promptAll("Enter book ID: ", "Enter member ID: ")
	if err != nil {
		return err
	}

	_, err = m.desk.checkout.Handle(ctx, checkoutbook.BuildCommand(fields[0], fields[1]))

	return m.report(err,
		fmt.Sprintf("Book %s checked out successfully to member %s.", fields[0], fields[1]),
		"Checkout failed")
}

func (m *menu) returnBook(ctx context.Context) error {
	fields, err := m.promptAll("Enter book ID: ", "Enter member ID: ")
	if err != nil {
		return err
	}

	_, err = m.desk.returnBook.Handle(ctx, returnbook.BuildCommand(fields[0], fields[1]))

	return m.report(err,
		fmt.Sprintf("Book %s returned successfully by member %s.", fields[0], fields[1]),
		"Return failed")
}

func (m *menu) listMembers() {
	members := m.desk.library.Members()
	if len(members) == 0 {
		m.println("No members found.")
		return
	}

	m.println("\nLibrary Members:")
	for _, member := range members {
		m.println(memberLine(member))
	}
}

func (m *menu) search(ctx context.Context) error {
	m.println("\nSearch Options:")
	m.println("1. Search by Title")
	m.println("2. Search by Author")
	m.println("3. Show Available Books")

	option, err := m.prompt("Enter search option (1-3): ")
	if err != nil {
		return err
	}

	var books []core.Book

	switch strings.TrimSpace(option) {
	case "1":
		if books, err = m.searchBy(ctx, searchbooks.ByTitle, "Enter title keyword: "); err != nil {
			return err
		}
	case "2":
		if books, err = m.searchBy(ctx, searchbooks.ByAuthor, "Enter author keyword: "); err != nil {
			return err
		}
	case "3":
		result, queryErr := m.desk.availableBooks.Handle(ctx, availablebooks.BuildQuery())
		if queryErr != nil {
			return queryErr
		}
		books = result.Books
	default:
		m.println("Invalid search option.")
		return nil
	}

	printBooks(m.out, "Search Results:", books, "No matching books found.")

	return nil
}

func (m *menu) searchBy(ctx context.Context, field searchbooks.Field, label string) ([]core.Book, error) {
	term, err := m.prompt(label)
	if err != nil {
		return nil, err
	}

	result, err := m.desk.searchBooks.Handle(ctx, searchbooks.BuildQuery(field, term))
	if err != nil {
		return nil, err
	}

	return result.Books, nil
}

func (m *menu) activityLog(ctx context.Context) error {
	fields, err := m.promptAll("Enter book ID (blank for none): ", "Enter member ID (blank for none): ")
	if err != nil {
		return err
	}

	result, err := m.desk.activityLog.Handle(ctx, activitylog.BuildQuery(fields[0], fields[1]))
	if errors.Is(err, activitylog.ErrNoSubject) {
		m.println("Please enter a book ID or a member ID.")
		return nil
	}
	if err != nil {
		return err
	}

	if result.Count() == 0 {
		m.println("No activity found.")
		return nil
	}

	m.println("\nActivity Log:")
	for _, entry := range result.Entries {
		m.println(activityLine(entry))
	}
	m.println(fmt.Sprintf("%d entries, %d refused", result.Count(), result.Failures()))

	return nil
}

// report prints the success line, or the failure prefix with the reason when a lending rule refused the command.
// Other errors are returned to the loop.
func (m *menu) report(err error, success string, failurePrefix string) error {
	switch {
	case err == nil:
		m.println(success)
		return nil
	case shell.IsRejection(err):
		m.println(fmt.Sprintf("%s: %v", failurePrefix, err))
		return nil
	default:
		return err
	}
}

func (m *menu) prompt(label string) (string, error) {
	_, _ = fmt.Fprint(m.out, label)

	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}

	return strings.TrimSpace(m.in.Text()), nil
}

func (m *menu) promptAll(labels ...string) ([]string, error) {
	values := make([]string, 0, len(labels))

	for _, label := range labels {
		value, err := m.prompt(label)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, nil
}

func (m *menu) handleInputEnd(err error) error {
	if errors.Is(err, errInputClosed) {
		m.println("")
		return nil
	}

	return err
}

func (m *menu) println(line string) {
	_, _ = fmt.Fprintln(m.out, line)
}
