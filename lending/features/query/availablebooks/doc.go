// Package availablebooks implements the Available Books query use case.
//
// The query lists the books currently on the shelf in the order they were added.
// It reads the library state and does not touch the journal.
package availablebooks
