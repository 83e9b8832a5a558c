// Package checkoutbook implements the Check Out Book use case.
//
// The checks run in a fixed order: the book exists, the member exists, the book is available,
// and the member holds fewer than core.MaxBooksPerMember books. The first failing check
// decides the error. A refused checkout changes neither the book nor the member,
// but its CheckingOutBookFailed event is journaled.
package checkoutbook
