// Package handler is the HTTP layer. Each handler binds and validates its
// request through the typed helpers in base.go, calls a service and
// writes the result.
package handler
