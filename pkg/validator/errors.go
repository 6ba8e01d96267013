package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidValue marks errors reporting a field value outside its allowed set.
	ErrInvalidValue = errors.New("invalid value")
)
