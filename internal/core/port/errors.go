package port

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStorageDisabled is returned when an operation needs an optional
	// backend (S3) that is not configured.
	ErrStorageDisabled = errors.New("storage disabled")
)
