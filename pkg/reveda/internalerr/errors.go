package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNoUsableRows   = errors.New("no usable rows")
	ErrMissingColumns = errors.New("missing required columns")
	ErrInvalidConfig  = errors.New("invalid configuration")
)
