// Package lifecycle evaluates registered field rules at persistence
// lifecycle stages.
//
// The Engine reads entities from a schema.Registry and, for a given stage,
// checks each rule declared for that stage against the record's current
// value. Rules declared for other stages are ignored; the rule only says when
// it is relevant, the caller decides when a stage happens.
//
//	engine := lifecycle.NewEngine(schema.Default(), lifecycle.WithLogger(log))
//
//	err := engine.BeforeSave(ctx, "account", lifecycle.Values{"status": status}, isNew)
//	if failure, ok := lifecycle.AsValidationFailure(err); ok {
//	    // abort the save and report failure.Errors to the user
//	}
//
// A *ValidationFailure is recoverable: it describes rejected values and wraps
// validator.ValidationErrors. Evaluation is deterministic and never retried.
package lifecycle
