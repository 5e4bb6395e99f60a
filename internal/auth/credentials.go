package auth

import "net/http"

// Credentials is the identifier/secret pair carried by an Authorization
// header.  The email address doubles as the account identifier.
type Credentials struct {
	Email    string
	Password string
}

// FromRequest parses Basic credentials from the request's Authorization
// header.  A missing or malformed header yields ok=false; that is an
// absence signal, not an error, so callers decide how to respond.
func FromRequest(r *http.Request) (Credentials, bool) {
	email, password, ok := r.BasicAuth()
	if !ok {
		return Credentials{}, false
	}
	return Credentials{Email: email, Password: password}, true
}
