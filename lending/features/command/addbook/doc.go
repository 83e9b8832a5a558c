// Package addbook implements the Add Book use case.
//
// A librarian adds a standard, fiction or non-fiction book to the catalog. The library
// rejects blank or duplicate ids and publication years after the current year. Both
// outcomes are journaled: BookAddedToCatalog on success, AddingBookFailed otherwise.
package addbook
