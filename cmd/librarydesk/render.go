package main

import (
	"fmt"
	"io"

	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/shell"
)

const activityTimeLayout = "2006-01-02 15:04:05"

func bookLine(book core.Book) string {
	s := book.Summary()

	availability := "Available"
	if !s.Available {
		availability = "Checked Out"
	}

	line := fmt.Sprintf("%s | %s by %s | %s | %d | %s", s.ID, s.Title, s.Author, s.Genre, s.Year, availability)

	switch s.Variant {
	case core.VariantFiction:
		line += " | Type: " + s.FictionType
	case core.VariantNonFiction:
		line += " | Subject: " + s.Subject
	case core.VariantStandard:
	}

	return line
}

func memberLine(member core.Member) string {
	s := member.Summary()

	return fmt.Sprintf("%s | %s | %s | Books borrowed: %d", s.ID, s.Name, s.Email, len(s.BooksBorrowed))
}

func activityLine(entry shell.EventEnvelope) string {
	return fmt.Sprintf("#%d | %s | %s | %s",
		entry.SequenceNumber,
		entry.DomainEvent.HasOccurredAt().Format(activityTimeLayout),
		entry.DomainEvent.EventType(),
		activityDetail(entry.DomainEvent),
	)
}

func activityDetail(event core.DomainEvent) string {
	switch e := event.(type) {
	case core.BookAddedToCatalog:
		return fmt.Sprintf("%s %q by %s", e.BookID, e.Title, e.Author)
	case core.MemberRegistered:
		return fmt.Sprintf("%s %s <%s>", e.MemberID, e.Name, e.Email)
	case core.BookCheckedOut:
		return fmt.Sprintf("%s to %s", e.BookID, e.MemberID)
	case core.BookReturned:
		return fmt.Sprintf("%s from %s", e.BookID, e.MemberID)
	case core.AddingBookFailed:
		return fmt.Sprintf("%s: %s", e.BookID, e.FailureInfo)
	case core.RegisteringMemberFailed:
		return fmt.Sprintf("%s: %s", e.MemberID, e.FailureInfo)
	case core.CheckingOutBookFailed:
		return fmt.Sprintf("%s to %s: %s", e.BookID, e.MemberID, e.FailureInfo)
	case core.ReturningBookFailed:
		return fmt.Sprintf("%s from %s: %s", e.BookID, e.MemberID, e.FailureInfo)
	default:
		return ""
	}
}

func printBanner(w io.Writer, library *core.Library) {
	_, _ = fmt.Fprintln(w, "\n===== LIBRARY MANAGEMENT SYSTEM =====")
	_, _ = fmt.Fprintf(w, "Library Name: %s\n", library.Name())
	_, _ = fmt.Fprintf(w, "Address: %s\n", library.Address())
	_, _ = fmt.Fprintf(w, "Total Books: %d\n", core.TotalBookCount())
	_, _ = fmt.Fprintf(w, "Total Members: %d\n", core.TotalMemberCount())
	_, _ = fmt.Fprintln(w, "\nMenu:")
	_, _ = fmt.Fprintln(w, "1. Add New Book")
	_, _ = fmt.Fprintln(w, "2. Add New Member")
	_, _ = fmt.Fprintln(w, "3. Checkout Book")
	_, _ = fmt.Fprintln(w, "4. Return Book")
	_, _ = fmt.Fprintln(w, "5. Display All Books")
	_, _ = fmt.Fprintln(w, "6. Display All Members")
	_, _ = fmt.Fprintln(w, "7. Search for Books")
	_, _ = fmt.Fprintln(w, "8. Show Activity Log")
	_, _ = fmt.Fprintln(w, "0. Exit")
}

func printBooks(w io.Writer, heading string, books []core.Book, empty string) {
	if len(books) == 0 {
		_, _ = fmt.Fprintln(w, empty)
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s\n", heading)
	for _, book := range books {
		_, _ = fmt.Fprintln(w, bookLine(book))
	}
}
