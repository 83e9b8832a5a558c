// Package returnbook implements the Return Book use case.
//
// Only the member who borrowed a book can return it. Returning a book the member does not
// hold fails with core.ErrBookNotBorrowed, which also matches core.ErrBookNotFound.
package returnbook
