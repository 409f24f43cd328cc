// Package handler is the HTTP layer between the router and the services.
//
// Each endpoint is a typed function wrapped by Handle, which binds and
// validates its request record before the function runs.
package handler
