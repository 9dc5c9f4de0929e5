package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s is required.", field),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NoComma rejects values containing a comma.
func NoComma(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.Contains(value, ",")
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s cannot contain a comma.", field),
			TranslationKey: "validation.no_comma",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen counts runes, not bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be at least %d characters long.", field, min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be at most %d characters long.", field, max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// ValidUTF8 rejects byte sequences that are not valid UTF-8.
func ValidUTF8(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.ValidString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s contains invalid characters.", field),
			TranslationKey: "validation.invalid_characters",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
