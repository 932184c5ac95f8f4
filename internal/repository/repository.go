// Package repository handles every interaction with the storage layers:
// in-memory collections for the dealership, MongoDB for the pokedex and
// PostgreSQL for the teslo shop.
//
// Repositories return driver errors as-is (wrapped with context) or one of
// the sentinels below; mapping to HTTP errors happens in the services.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")
