package shape

import "errors"

// Sentinel errors for shape operations.
var (
	// ErrNoMarks indicates the grid has no foreground cells.
	ErrNoMarks = errors.New("shape: grid contains no marks")
)
