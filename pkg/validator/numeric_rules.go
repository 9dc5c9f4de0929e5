package validator

import (
	"errors"
	"fmt"
	"strconv"
)

// Integer validates that a string is a base-10 integer. Values too large for
// int still count as numbers; range rules reject them.
func Integer(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := strconv.Atoi(value)
			return err == nil || errors.Is(err, strconv.ErrRange)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be a valid number.", field),
			TranslationKey: "validation.integer",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IntBetween validates that a string holds an integer within [min, max].
// Unparsable input fails; pair it with Integer first to report that separately.
func IntBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n, err := strconv.Atoi(value)
			if err != nil {
				return false
			}
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be between %d and %d.", field, min, max),
			TranslationKey: "validation.int_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
