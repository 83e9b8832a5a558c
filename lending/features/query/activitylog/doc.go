// Package activitylog implements the Activity Log query use case.
//
// The query reads the session journal and returns every event about a book, a member,
// or both, in journal order. Refused operations appear as failure events.
package activitylog
