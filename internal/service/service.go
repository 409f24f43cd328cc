// Package service contains the operations behind each endpoint.
//
// It receives records the handler layer already bound and validated, so
// it never re-checks input constraints.
package service
