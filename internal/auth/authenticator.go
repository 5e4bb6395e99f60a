// Package auth implements per-request credential authentication: parsing
// the Basic Authorization header and verifying the pair against the user
// store.  Every resource handler that needs an authenticated user depends
// on the single Authenticator here rather than carrying its own copy of
// the logic.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/repository"
)

// Failure reasons.  They exist for internal logging only; the HTTP layer
// collapses all of them into one generic 401 so a caller cannot probe
// which emails are registered.
var (
	// ErrNoCredentials means the Authorization header was missing or
	// not parseable as Basic credentials.
	ErrNoCredentials = errors.New("auth header not found")

	// ErrUnknownUser means no user matched the supplied email.  Wrapped
	// errors carry the attempted identifier for the server log.
	ErrUnknownUser = errors.New("user not found")

	// ErrBadCredentials means the user exists but verification failed.
	ErrBadCredentials = errors.New("invalid credentials")
)

// UserFinder is the slice of the user store the Authenticator needs.
// Implementations must return repository.ErrUserNotFound for a lookup
// miss; any other error is treated as a store failure.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// IsCredentialFailure reports whether err is one of the credential
// failure sentinels.  Store failures surfaced by Authenticate are not
// credential failures and must not be answered with 401.
func IsCredentialFailure(err error) bool {
	return errors.Is(err, ErrNoCredentials) ||
		errors.Is(err, ErrUnknownUser) ||
		errors.Is(err, ErrBadCredentials)
}

// Authenticator resolves request credentials to a stored user.
type Authenticator struct {
	users UserFinder
}

// New constructs an Authenticator over the given user store.
func New(users UserFinder) *Authenticator {
	if users == nil {
		panic("nil UserFinder passed to auth.New")
	}
	return &Authenticator{users: users}
}

// Authenticate extracts Basic credentials from the request, looks up the
// user by exact email match, and verifies the password against the stored
// bcrypt hash.  The supplied identifier is additionally re-checked against
// the stored email so a case-normalizing lookup upstream can never
// authenticate a mismatched identifier.  On success the resolved user is
// returned; on a credential failure one of the sentinel errors above; a
// failing store propagates its own error.
func (a *Authenticator) Authenticate(ctx context.Context, r *http.Request) (*model.User, error) {
	creds, ok := FromRequest(r)
	if !ok {
		return nil, ErrNoCredentials
	}

	u, err := a.users.FindByEmail(ctx, creds.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("%w for username: %s", ErrUnknownUser, creds.Email)
	}
	if err != nil {
		// Not a miss: the store itself failed.  Callers must not treat
		// this as a credential failure.
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	if !VerifyPassword(u.PasswordHash, creds.Password) || creds.Email != u.EmailAddress {
		return nil, fmt.Errorf("%w for username: %s", ErrBadCredentials, u.EmailAddress)
	}
	return u, nil
}
