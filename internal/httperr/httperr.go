// Package httperr defines the closed set of error shapes the API can
// return and the Echo error handler that serializes them.  Handlers and
// middleware return *Error values instead of writing responses inline, so
// every failure path funnels through one place.
package httperr

import "net/http"

// Error is a tagged HTTP failure carrying a status code and a message
// that is safe to expose to the caller.  Validation failures additionally
// carry the ordered list of violation messages.
type Error struct {
	Status  int
	Message string
	Details []string // validation messages, in field-declaration order
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Validation builds the 400 response for a failed rule table run.
func Validation(msgs []string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "validation failed", Details: msgs}
}

// BadRequest is for malformed requests outside field validation, such as
// unparseable bodies or non-numeric path ids.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Unauthorized is the single generic 401.  Authentication failure detail
// stays in the server log; the body never distinguishes an unknown user
// from a wrong password.
func Unauthorized() *Error {
	return &Error{Status: http.StatusUnauthorized, Message: "Access Denied"}
}

// Forbidden is returned on ownership mismatches.
func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// NotFound is returned when a specific-id lookup yields nothing.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Conflict is returned on unique-email or natural-key duplicates.
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// Internal wraps an unexpected failure.  The wrapped error's text is
// exposed as-is, which must therefore never contain secret material.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: err.Error()}
}
