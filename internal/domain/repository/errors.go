package repository

import "errors"

var (
	// ErrNotFound is returned when a user, session or token lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when creating a user with an email
	// that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)
