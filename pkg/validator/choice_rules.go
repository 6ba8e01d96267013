package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// InListString matches value against allowedValues by exact, case-sensitive
// comparison.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

func NotInListString(field, value string, forbiddenValues []string) Rule {
	return Rule{
		Check: func() bool {
			return !slices.Contains(forbiddenValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not be one of: %s", strings.Join(forbiddenValues, ", ")),
			TranslationKey: "validation.not_in_list",
			TranslationValues: map[string]any{
				"field":            field,
				"forbidden_values": forbiddenValues,
			},
		},
	}
}

// WithMessage returns a copy of r reporting message instead of its default.
// An empty message keeps the default.
func (r Rule) WithMessage(message string) Rule {
	if message != "" {
		r.Error.Message = message
	}
	return r
}

// WithTranslation returns a copy of r using key and merging values into the
// rule's translation values.
func (r Rule) WithTranslation(key string, values map[string]any) Rule {
	if key != "" {
		r.Error.TranslationKey = key
	}
	if len(values) > 0 {
		merged := make(map[string]any, len(r.Error.TranslationValues)+len(values))
		for k, v := range r.Error.TranslationValues {
			merged[k] = v
		}
		for k, v := range values {
			merged[k] = v
		}
		r.Error.TranslationValues = merged
	}
	return r
}

// Semantic aliases

func OneOfString(field, value string, options []string) Rule {
	return InListString(field, value, options)
}

func ValidEnum(field, value string, enumValues []string) Rule {
	return InListString(field, value, enumValues)
}
