// Package repository contains data access logic separated from HTTP
// handlers.  This file defines error values that are reused across the
// repositories.  These sentinel values let higher layers such as handlers
// distinguish between failure scenarios: not-found misses map to HTTP
// 404, while the duplicate errors signal unique-key conflicts that map
// to HTTP 409.
package repository

import (
	"errors"
	"strings"
)

// ErrUserNotFound is returned when a user cannot be found in the DB.
var ErrUserNotFound = errors.New("user not found")

// ErrCourseNotFound is returned when a course cannot be found in the DB.
var ErrCourseNotFound = errors.New("course not found")

// ErrEmailExists is returned when a user insert collides with the unique
// index on email_address.
var ErrEmailExists = errors.New("email already exists")

// ErrDuplicateCourse is returned when a course insert collides with an
// existing (title, description) pair.
var ErrDuplicateCourse = errors.New("course already exists")

// isDuplicateErr reports whether err is a MySQL duplicate-key error
// (error number 1062).
func isDuplicateErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
