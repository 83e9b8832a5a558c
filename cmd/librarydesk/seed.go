package main

import (
	"context"
	"fmt"

	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/features/command/addbook"
	"github.com/librarydesk/lendingdesk/lending/features/command/addmember"
)

var seedBooks = []addbook.Command{
	addbook.BuildCommand("B001", "To Kill a Mockingbird", "Harper Lee", "Fiction", 1960, core.VariantFiction, "Novel"),
	addbook.BuildCommand("B002", "1984", "George Orwell", "Fiction", 1949, core.VariantFiction, "Novel"),
	addbook.BuildCommand("B003", "A Brief History of Time", "Stephen Hawking", "Non-Fiction", 1988, core.VariantNonFiction, "Physics"),
	addbook.BuildCommand("B004", "Sapiens", "Yuval Noah Harari", "Non-Fiction", 2011, core.VariantNonFiction, "History"),
}

var seedMembers = []addmember.Command{
	addmember.BuildCommand("M001", "John Smith", "john@example.com"),
	addmember.BuildCommand("M002", "Jane Doe", "jane@example.com"),
}

// seedCatalog adds the starter books and members through the regular handlers, so they are journaled.
func seedCatalog(ctx context.Context, d *desk) error {
	for _, command := range seedBooks {
		if _, err := d.addBook.Handle(ctx, command); err != nil {
			return fmt.Errorf("seed book %s: %w", command.BookID, err)
		}
	}

	for _, command := range seedMembers {
		if _, err := d.addMember.Handle(ctx, command); err != nil {
			return fmt.Errorf("seed member %s: %w", command.MemberID, err)
		}
	}

	return nil
}
