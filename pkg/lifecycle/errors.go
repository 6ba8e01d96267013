package lifecycle

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/fieldrules/pkg/fieldrule"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

var (
	ErrUnknownEntity = errors.New("entity is not registered")
	ErrNilRecord     = errors.New("record must not be nil")
	ErrUnknownStage  = errors.New("rule names an unknown lifecycle stage")
)

// ValidationFailure reports field values rejected at a lifecycle stage. The
// caller should abort the operation it was performing.
type ValidationFailure struct {
	Entity string
	Stage  fieldrule.Stage
	Errors validator.ValidationErrors
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Entity, e.Stage, e.Errors)
}

func (e *ValidationFailure) Unwrap() error {
	return e.Errors
}

// Is reports a failure as validator.ErrInvalidValue.
func (e *ValidationFailure) Is(target error) bool {
	return target == validator.ErrInvalidValue
}

func IsValidationFailure(err error) bool {
	var e *ValidationFailure
	return errors.As(err, &e)
}

// AsValidationFailure extracts a *ValidationFailure from err's chain.
func AsValidationFailure(err error) (*ValidationFailure, bool) {
	var e *ValidationFailure
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
