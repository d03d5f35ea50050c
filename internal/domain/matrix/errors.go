package matrix

import "errors"

// Sentinel kinds for matrix errors.
var (
	// ErrDimensionMismatch indicates participants were vectorized against
	// different questionnaires; the matrix would be meaningless.
	ErrDimensionMismatch = errors.New("inconsistent feature vector dimension")
)
