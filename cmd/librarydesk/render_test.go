package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarydesk/lendingdesk/lending/core"
)

func Test_BookLine(t *testing.T) {
	library := core.NewLibrary("Render Library", "Render St")
	require.NoError(t, library.AddBook(core.NewBook{
		ID: "B001", Title: "Dune", Author: "Frank Herbert", Genre: "SF", PublicationYear: 1965,
		Variant: core.VariantFiction, Detail: "Epic",
	}))
	require.NoError(t, library.AddBook(core.NewBook{
		ID: "B002", Title: "Cosmos", Author: "Carl Sagan", Genre: "Science", PublicationYear: 1980,
		Variant: core.VariantNonFiction, Detail: "Astronomy",
	}))
	require.NoError(t, library.AddBook(core.NewBook{
		ID: "B003", Title: "Notes", Author: "Anon", Genre: "Misc", PublicationYear: 2001,
	}))
	require.NoError(t, library.AddMember("M001", "John Smith", "john@example.com"))
	require.NoError(t, library.CheckoutBook("B002", "M001"))

	books := library.Books()
	require.Len(t, books, 3)

	assert.Equal(t, "B001 | Dune by Frank Herbert | SF | 1965 | Available | Type: Epic", bookLine(books[0]))
	assert.Equal(t, "B002 | Cosmos by Carl Sagan | Science | 1980 | Checked Out | Subject: Astronomy", bookLine(books[1]))
	assert.Equal(t, "B003 | Notes by Anon | Misc | 2001 | Available", bookLine(books[2]))

	member, err := library.Member("M001")
	require.NoError(t, err)
	assert.Equal(t, "M001 | John Smith | john@example.com | Books borrowed: 1", memberLine(member))
}
