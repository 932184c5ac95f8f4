// Package errs defines the error shape returned to API clients.
//
// Services return *HTTPError for every expected failure (not found,
// invalid input, bad credentials). The global error handler writes it as
// JSON unchanged; anything else is classified there or becomes a 500.
package errs
