// Package addmember implements the Register Member use case.
//
// The library rejects blank or duplicate member ids and malformed email addresses.
// A registered member starts with no borrowed books.
package addmember
