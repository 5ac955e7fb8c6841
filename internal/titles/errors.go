package titles

import "errors"

var (
	// ErrValidation is returned when a required field is missing or empty.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when no title exists with the requested id.
	ErrNotFound = errors.New("title not found")
)
