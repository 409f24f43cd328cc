// Package errs defines the error shapes returned to API clients.
//
// Every failure, from a malformed body to an unknown person id, reaches the
// client as an HTTPError so responses stay consistent.
package errs
