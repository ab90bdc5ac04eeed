package repository

import "errors"

var (
	// ErrNotFound is returned when the requested id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUniqueViolation is returned when an insert or update breaks a
	// unique constraint (users.email).
	ErrUniqueViolation = errors.New("unique constraint violated")
)
