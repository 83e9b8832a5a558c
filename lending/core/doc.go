// Package core contains the lending desk domain: the Library aggregate, its Book and Member entities,
// the five error kinds every operation reports, and the domain events the aggregate records.
//
// The package performs no I/O and never logs. Callers pass already typed arguments and inspect errors
// with errors.Is. The feature handlers in lending/features use the Decide methods, append the decided
// event to the session journal, and Commit the change only once the append succeeded. Direct callers
// of AddBook, CheckoutBook, ... drain the recorded events with Library.TakeRecordedEvents.
//
// Lending rules:
//   - book and member ids are unique within a Library
//   - a member holds at most MaxBooksPerMember books
//   - a book is available iff no member holds it
//   - publication years after the current calendar year are rejected
package core
