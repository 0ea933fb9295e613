package progress

import "errors"

var (
	// ErrNotFound indicates no value is stored under the requested key.
	ErrNotFound = errors.New("progress key not found")
	// ErrMissingKey indicates an empty storage key was supplied.
	ErrMissingKey = errors.New("storage key is required")
)
