package animals

import "errors"

var (
	// ErrNotFound is returned when no listing has the requested ID.
	ErrNotFound = errors.New("animal not found")

	// ErrStorage wraps failures of the underlying store.
	ErrStorage = errors.New("animal storage failure")
)
