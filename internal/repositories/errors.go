package repositories

import "errors"

// Sentinel errors returned by repository implementations. Callers match them
// with errors.Is; implementations wrap them with context.
var (
	// ErrNotFound is returned when a looked-up row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a user insert violates the unique
	// index on email. The index is the source of truth for uniqueness; any
	// pre-insert lookup is a fast path only.
	ErrDuplicateEmail = errors.New("email already registered")
)
