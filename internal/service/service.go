// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated payloads from handlers, applies the domain rules and calls
// the stores below. Expected failures come back as *errs.HTTPError;
// anything else is returned wrapped and mapped by the global error
// handler.
package service
