package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "status", Message: "value not in allowed set"})
		assert.Equal(t, "validation failed: status: value not in allowed set", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "status", Message: "bad status"})
		errs.Add(validator.ValidationError{Field: "plan", Message: "bad plan"})

		msg := errs.Error()
		assert.Contains(t, msg, "status: bad status")
		assert.Contains(t, msg, "plan: bad plan")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "status", Message: "first"})
	errs.Add(validator.ValidationError{Field: "plan", Message: "other"})
	errs.Add(validator.ValidationError{Field: "status", Message: "second"})

	assert.True(t, errs.Has("status"))
	assert.False(t, errs.Has("missing"))
	assert.Equal(t, []string{"first", "second"}, errs.Get("status"))
	assert.Nil(t, errs.Get("missing"))
	assert.Len(t, errs.GetErrors("status"), 2)
	assert.Equal(t, []string{"status", "plan"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "a"}}
	fail := func(field string) validator.Rule {
		return validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: field, Message: "failed"}}
	}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"a", "b"}, verrs.Fields())
	})

	t.Run("rule without check is skipped", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.Rule{}))
	})
}

func TestApplyFirst(t *testing.T) {
	calls := 0
	counted := func(ok bool, field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { calls++; return ok },
			Error: validator.ValidationError{Field: field},
		}
	}

	err := validator.ApplyFirst(counted(true, "a"), counted(false, "b"), counted(false, "c"))
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"b"}, validator.ExtractValidationErrors(err).Fields())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.ValidationErrors{{Field: "status", Message: "bad"}}
		err := fmt.Errorf("saving account: %w", inner)

		assert.True(t, validator.IsValidationError(err))
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.Equal(t, inner, validator.ExtractValidationErrors(err))
	})
}
