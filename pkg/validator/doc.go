// Package validator provides the rule and error model shared by field rules.
//
// A Rule couples a deferred boolean Check with a ValidationError describing
// the failure. Apply evaluates rules and aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so several
// field-level problems can be returned from a single call.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.InListString("status", status, []string{"ACTIVE", "INACTIVE"}),
//	    validator.ValidEnum("plan", plan, plans).WithMessage("unknown plan"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages or translate them
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed through errors.Is and can be
// recovered from wrapped chains with ExtractValidationErrors. Each
// ValidationError carries a TranslationKey and TranslationValues so callers
// can render localized messages instead of the default English text.
//
// Rules hold no shared state; the package is safe for concurrent use.
package validator
