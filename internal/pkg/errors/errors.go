package errors

import "errors"

var (
	// ErrNotFound is returned when a lookup by identifier has no match.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument wraps write payloads that fail schema validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is returned when a write would break a uniqueness rule.
	ErrConflict = errors.New("conflict")
)
