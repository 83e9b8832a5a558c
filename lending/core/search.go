package core

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchBooksByTitle returns the books whose title contains the query, ignoring case, in insertion order.
// A blank query matches nothing.
func (l *Library) SearchBooksByTitle(query string) []Book {
	return l.searchBooks(query, Book.Title)
}

// SearchBooksByAuthor returns the books whose author contains the query, ignoring case, in insertion order.
// A blank query matches nothing.
func (l *Library) SearchBooksByAuthor(query string) []Book {
	return l.searchBooks(query, Book.Author)
}

func (l *Library) searchBooks(query string, field func(Book) string) []Book {
	matches := make([]Book, 0)

	if strings.TrimSpace(query) == "" {
		return matches
	}

	folder := cases.Fold()
	needle := folder.String(query)

	for book := range l.allBooks() {
		if strings.Contains(folder.String(field(book)), needle) {
			matches = append(matches, book)
		}
	}

	return matches
}
