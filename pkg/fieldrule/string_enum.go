package fieldrule

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// DefaultMessage is reported on failure when a rule has no custom message.
const DefaultMessage = "value not in allowed set"

// TranslationKey identifies string enum failures for message catalogs.
const TranslationKey = "validation.string_enum"

// StringEnum restricts a string field to a closed set of values. It is
// immutable after New returns and safe for concurrent use.
type StringEnum struct {
	values  []string
	set     map[string]struct{}
	message string
	stage   Stage
}

// Option configures optional parts of a StringEnum declaration.
type Option func(*StringEnum)

// WithMessage sets the message reported when a value is rejected.
func WithMessage(message string) Option {
	return func(r *StringEnum) {
		r.message = message
	}
}

// WithStage sets the lifecycle stage the rule applies to.
// An empty stage keeps DefaultStage.
func WithStage(stage Stage) Option {
	return func(r *StringEnum) {
		if stage != "" {
			r.stage = stage
		}
	}
}

// New declares a rule over allowedValues. The list is copied; order is kept
// for message rendering only.
func New(allowedValues []string, opts ...Option) (*StringEnum, error) {
	if len(allowedValues) == 0 {
		return nil, NewDeclarationError("", ErrEmptyAllowedValues)
	}

	r := &StringEnum{
		values: slices.Clone(allowedValues),
		set:    make(map[string]struct{}, len(allowedValues)),
		stage:  DefaultStage,
	}
	for _, v := range r.values {
		if _, dup := r.set[v]; dup {
			return nil, NewDeclarationError("", fmt.Errorf("%w: %q", ErrDuplicateAllowedValue, v))
		}
		r.set[v] = struct{}{}
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// MustNew is like New but panics on a declaration error. Intended for
// package-level rule variables.
func MustNew(allowedValues []string, opts ...Option) *StringEnum {
	r, err := New(allowedValues, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// AllowedValues returns a copy of the allowed values in declaration order.
func (r *StringEnum) AllowedValues() []string {
	return slices.Clone(r.values)
}

// Message returns the custom failure message, or "" when unset.
func (r *StringEnum) Message() string {
	return r.message
}

func (r *StringEnum) Stage() Stage {
	return r.stage
}

// AppliesAt reports whether the rule is evaluated at stage.
func (r *StringEnum) AppliesAt(stage Stage) bool {
	return r.stage == stage
}

// Allows reports exact, case-sensitive membership of value.
func (r *StringEnum) Allows(value string) bool {
	_, ok := r.set[value]
	return ok
}

// Result is the outcome of checking one value against a rule.
type Result struct {
	OK      bool
	Message string
}

// Check evaluates value, falling back to DefaultMessage on failure.
func (r *StringEnum) Check(value string) Result {
	return r.CheckWithFallback(value, DefaultMessage)
}

// CheckWithFallback evaluates value. A failure reports the rule's message, or
// fallback when the rule has none.
func (r *StringEnum) CheckWithFallback(value, fallback string) Result {
	if r.Allows(value) {
		return Result{OK: true}
	}
	return Result{OK: false, Message: r.failureMessage(fallback)}
}

// CheckField is the function form of Check.
func CheckField(value string, rule *StringEnum) Result {
	return rule.Check(value)
}

// Rule adapts the check on field's value into a validator.Rule.
func (r *StringEnum) Rule(field, value string) validator.Rule {
	return r.RuleWithFallback(field, value, DefaultMessage)
}

// RuleWithFallback is Rule with a caller supplied generic message.
func (r *StringEnum) RuleWithFallback(field, value, fallback string) validator.Rule {
	allowed := r.AllowedValues()
	return validator.InListString(field, value, allowed).
		WithMessage(r.failureMessage(fallback)).
		WithTranslation(TranslationKey, map[string]any{
			"value": value,
			"stage": string(r.stage),
		})
}

func (r *StringEnum) failureMessage(fallback string) string {
	if r.message != "" {
		return r.message
	}
	if fallback != "" {
		return fallback
	}
	return DefaultMessage
}
