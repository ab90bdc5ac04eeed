package application

import "errors"

// Failure conditions surfaced to the HTTP boundary. Handlers translate
// these into the error envelope exactly once; nothing below the boundary
// knows about HTTP statuses.
var (
	ErrUserNotFound = errors.New("user is not found")
	ErrNewsNotFound = errors.New("news is not found")
	ErrEmailTaken   = errors.New("such user exists")
)
