// Package searchbooks implements the Search Books query use case.
//
// Books are matched by a case-insensitive substring of their title or author.
// A blank search term matches nothing.
package searchbooks
