// Package repository holds the data the service layer reads.
//
// Nothing is persisted: repositories are in-memory and read-only after
// start-up.
package repository
