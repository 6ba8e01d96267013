// Package fieldrule declares enumerated-string rules for data-model fields.
//
// A StringEnum is read-only metadata: a non-empty ordered list of allowed
// values, an optional failure message and the lifecycle Stage at which a
// validation engine should evaluate it. Rules are built once, usually as
// package-level values during schema registration, and never change.
//
// # Usage
//
//	var accountStatus = fieldrule.MustNew(
//	    []string{"ACTIVE", "INACTIVE"},
//	    fieldrule.WithMessage("must be one of ACTIVE, INACTIVE"),
//	)
//
//	res := accountStatus.Check("PENDING")
//	// res.OK == false, res.Message == "must be one of ACTIVE, INACTIVE"
//
// Matching is exact set membership: case-sensitive, no trimming or other
// normalization. Without a custom message, failures report DefaultMessage.
//
// # Error Handling
//
// New returns a *DeclarationError when the allowed list is empty or repeats a
// value; MustNew panics with it. Failures found while checking values are not
// errors here: Check returns a Result and Rule yields a validator.Rule whose
// failure is reported through validator.Apply.
package fieldrule
