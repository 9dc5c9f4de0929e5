package adoption

import "regexp"

// FieldID identifies one validated field of the adoption form.
type FieldID string

const (
	FieldName        FieldID = "name"
	FieldSpecies     FieldID = "species"
	FieldBreed       FieldID = "breed"
	FieldAge         FieldID = "age"
	FieldDescription FieldID = "description"
	FieldEmail       FieldID = "email"
	FieldAddress     FieldID = "address"
	FieldCity        FieldID = "city"
	FieldPostalCode  FieldID = "postalCode"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Format selects a named format check applied after presence, comma and
// length/range checks.
type Format int

const (
	FormatNone Format = iota
	FormatEmail
	FormatCanadianPostalCode
)

// FieldSpec is the declarative rule set for one field.
type FieldSpec struct {
	ID FieldID
	// Label is the wording used in messages, e.g. "postal code".
	Label    string
	Required bool
	// ForbidComma rejects values containing ','.
	ForbidComma bool
	MinLen      int
	MaxLen      int
	// Integer requires the value to parse as a base-10 integer.
	Integer bool
	Range   *Range
	Format  Format
	Pattern *regexp.Regexp
	// PatternName describes Pattern in messages.
	PatternName string
	// Normalize produces the canonical display value reported in Result.Value.
	Normalize func(string) string
}

// DefaultFields returns the adoption form fields in declaration order.
func DefaultFields() []FieldSpec {
	return []FieldSpec{
		{ID: FieldName, Label: "name", Required: true, ForbidComma: true, MinLen: 3, MaxLen: 20},
		{ID: FieldSpecies, Label: "species", Required: true, ForbidComma: true},
		{ID: FieldBreed, Label: "breed", Required: true, ForbidComma: true},
		{ID: FieldAge, Label: "age", Required: true, Integer: true, Range: &Range{Min: 0, Max: 30}},
		{ID: FieldDescription, Label: "description", Required: true, ForbidComma: true},
		{ID: FieldEmail, Label: "email", Required: true, ForbidComma: true, Format: FormatEmail},
		{ID: FieldAddress, Label: "address", Required: true, ForbidComma: true},
		{ID: FieldCity, Label: "city", Required: true, ForbidComma: true},
		{
			ID:          FieldPostalCode,
			Label:       "postal code",
			Required:    true,
			ForbidComma: true,
			Format:      FormatCanadianPostalCode,
			Normalize:   NormalizePostalCodeInput,
		},
	}
}
