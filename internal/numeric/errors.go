package numeric

import "errors"

// Domain errors for array operations.
var (
	// ErrEmpty indicates a reduction (min/max) over an empty sequence.
	ErrEmpty = errors.New("numeric: empty sequence")

	// ErrNotNumeric indicates input that cannot be interpreted as a numeric sequence.
	ErrNotNumeric = errors.New("numeric: not a numeric sequence")
)
