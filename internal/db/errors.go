package db

import "errors"

// Error roots for the operator-facing failure taxonomy. Operations wrap
// these with fmt.Errorf("%w: ..."), so callers branch with errors.Is and
// show the message as a warning. Anything else is a storage error: reported,
// nothing retried, no partial state left behind.
var (
	// ErrValidation marks rejected user input (empty name, non-positive
	// price/amount/quantity).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks operations referencing a missing record.
	ErrNotFound = errors.New("not found")
)
