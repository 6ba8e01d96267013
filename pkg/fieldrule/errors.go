package fieldrule

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAllowedValues is returned when a rule is declared without allowed values.
	ErrEmptyAllowedValues = errors.New("allowed values must not be empty")

	// ErrDuplicateAllowedValue is returned when the allowed values repeat an entry.
	ErrDuplicateAllowedValue = errors.New("duplicate allowed value")
)

// DeclarationError reports a rule that cannot be registered. It is raised at
// declaration time and must abort the declaring entity's registration.
type DeclarationError struct {
	Field string
	Err   error
}

func (e *DeclarationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("string enum declaration: %v", e.Err)
	}
	return fmt.Sprintf("string enum declaration for %s: %v", e.Field, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}

func NewDeclarationError(field string, err error) *DeclarationError {
	return &DeclarationError{Field: field, Err: err}
}

func IsDeclarationError(err error) bool {
	var e *DeclarationError
	return errors.As(err, &e)
}
