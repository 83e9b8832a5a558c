// Command librarydesk is the librarian's terminal for the lending desk.
//
// It runs a numbered text menu on stdin/stdout: add books and members, check books
// out and back in, list the catalog and members, search, and read the session's
// activity log. Logs go to stderr.
//
// Configuration is read from LIBRARY_* environment variables and can be overridden
// with flags, see -help.
package main
