package field

import "errors"

var (
	// ErrUnsupportedLambda is returned when no extension field is defined for
	// the requested lambda.
	ErrUnsupportedLambda = errors.New("unsupported lambda")
	// ErrSizeMismatch is returned when operands or buffers do not have the
	// expected length.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrEmptyInput is returned when an operation needs at least one element.
	ErrEmptyInput = errors.New("empty input")
)
