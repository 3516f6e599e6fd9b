package domain

import "errors"

// Error kinds the HTTP boundary maps to status codes. Repos and services wrap
// these with context via fmt.Errorf("%w: ..."); callers match with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
)
