package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a product with the same code already exists.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput indicates a missing code or a status outside the workflow.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCorruptRecord indicates a stored row that cannot be represented as a Product.
	ErrCorruptRecord = errors.New("corrupt record")
)

// IsRetryable reports whether err is a lost create race that the caller may
// resolve by retrying the write as an update.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict)
}
