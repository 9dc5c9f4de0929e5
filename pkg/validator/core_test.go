package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/petadopt/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "age", Message: "too old"})

		assert.Equal(t, "validation failed: email: is required; age: too old", errs.Error())
	})

	t.Run("single error", func(t *testing.T) {
		err := validator.ValidationError{Field: "age", Message: "too old"}
		assert.Equal(t, "age: too old", err.Error())
	})
}

func TestFirst(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.Nil(t, validator.First(validator.Required("name", "Rex")))
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		evaluated := false
		trap := validator.Rule{
			Check: func() bool {
				evaluated = true
				return false
			},
			Error: validator.ValidationError{Field: "name", Message: "unreachable"},
		}

		failure := validator.First(
			validator.Required("name", "  "),
			trap,
		)
		require.NotNil(t, failure)
		assert.Equal(t, "name is required.", failure.Message)
		assert.Equal(t, "validation.required", failure.TranslationKey)
		assert.False(t, evaluated, "rules after the first failure must not run")
	})
}
