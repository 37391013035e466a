package textgrid

import "errors"

// Sentinel errors for textgrid operations.
var (
	// ErrEmptyInput indicates the input contains no lines after trimming
	// trailing blank lines.
	ErrEmptyInput = errors.New("textgrid: input must contain at least one line")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("textgrid: all rows must have the same length")
)
