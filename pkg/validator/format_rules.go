package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailLocalRegex  = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+$")
	domainLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

	// Canadian postal code: letter digit letter, optional space, digit letter digit.
	caPostalCodeRegex = regexp.MustCompile(`^[A-Z]\d[A-Z]\s?\d[A-Z]\d$`)
)

// Email validates an address against a strict grammar: a local part made of
// letters, digits and .!#$%&'*+/=?^_`{|}~- followed by a domain of
// dot-separated labels. Labels are alphanumeric with inner hyphens only and
// never carry two hyphens in a row.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isStrictEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be a valid email address.", field),
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isStrictEmail(value string) bool {
	local, domain, ok := strings.Cut(value, "@")
	if !ok || !emailLocalRegex.MatchString(local) {
		return false
	}
	if domain == "" {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if !domainLabelRegex.MatchString(label) || strings.Contains(label, "--") {
			return false
		}
	}
	return true
}

// CanadianPostalCode validates the "A1A 1A1" shape; the space is optional and
// letters are matched case-insensitively.
func CanadianPostalCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return caPostalCodeRegex.MatchString(strings.ToUpper(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be a valid Canadian postal code (e.g. H1H 1H1).", field),
			TranslationKey: "validation.postal_code",
			TranslationValues: map[string]any{
				"field":   field,
				"example": "H1H 1H1",
			},
		},
	}
}

// Matches validates against a precompiled pattern. description names the
// expected shape in the message.
func Matches(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern != nil && pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must match %s.", field, description),
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
		},
	}
}
