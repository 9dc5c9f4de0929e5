package adoption

import (
	"fmt"

	"github.com/dmitrymomot/petadopt/pkg/sanitizer"
	"github.com/dmitrymomot/petadopt/pkg/validator"
)

// Result is the outcome of validating one field.
type Result struct {
	Field FieldID `json:"field"`
	Valid bool    `json:"valid"`
	// Message is empty when Valid is true.
	Message string `json:"message"`
	// Value is the trimmed input, normalized for fields that define it.
	Value  string         `json:"value"`
	Key    string         `json:"-"`
	Params map[string]any `json:"-"`
}

// Snapshot maps field IDs to raw input values. Missing keys read as empty.
type Snapshot map[FieldID]string

// Engine validates adoption form fields against a fixed list of FieldSpecs.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	fields []FieldSpec
	byID   map[FieldID]int
}

// NewEngine builds an engine over fields, keeping their order for ValidateAll.
// Duplicate IDs panic: they are a wiring mistake, not a runtime condition.
func NewEngine(fields ...FieldSpec) *Engine {
	if len(fields) == 0 {
		fields = DefaultFields()
	}
	e := &Engine{
		fields: make([]FieldSpec, len(fields)),
		byID:   make(map[FieldID]int, len(fields)),
	}
	copy(e.fields, fields)
	for i, f := range e.fields {
		if _, dup := e.byID[f.ID]; dup {
			panic(fmt.Sprintf("adoption: duplicate field spec %q", f.ID))
		}
		e.byID[f.ID] = i
	}
	return e
}

// Fields returns the field IDs in evaluation order.
func (e *Engine) Fields() []FieldID {
	ids := make([]FieldID, len(e.fields))
	for i, f := range e.fields {
		ids[i] = f.ID
	}
	return ids
}

// Spec returns the FieldSpec registered for id.
func (e *Engine) Spec(id FieldID) (FieldSpec, bool) {
	i, ok := e.byID[id]
	if !ok {
		return FieldSpec{}, false
	}
	return e.fields[i], true
}

// ValidateField checks rawValue against the rules of fieldID. Invalid input
// is reported through Result; the error is only set for an unknown field.
func (e *Engine) ValidateField(fieldID FieldID, rawValue string) (Result, error) {
	spec, ok := e.Spec(fieldID)
	if !ok {
		return Result{Field: fieldID}, fmt.Errorf("%w: %q", ErrUnknownField, fieldID)
	}
	return validate(spec, rawValue), nil
}

// MustValidateField is ValidateField for callers passing constant field IDs.
// It panics on an unknown field.
func (e *Engine) MustValidateField(fieldID FieldID, rawValue string) Result {
	res, err := e.ValidateField(fieldID, rawValue)
	if err != nil {
		panic(err)
	}
	return res
}

// ValidateAll validates every field of snapshot in declaration order. All
// fields are evaluated even after a failure so callers can show every error.
func (e *Engine) ValidateAll(snapshot Snapshot) (bool, []Result) {
	valid := true
	results := make([]Result, 0, len(e.fields))
	for _, spec := range e.fields {
		res := validate(spec, snapshot[spec.ID])
		valid = valid && res.Valid
		results = append(results, res)
	}
	return valid, results
}

// NormalizePostalCodeInput formats a postal code while it is being typed:
// uppercase, ASCII letters and digits only, a space after the third
// character and nothing past the sixth.
func NormalizePostalCodeInput(rawValue string) string {
	return sanitizer.FormatPostalCodeInput(rawValue)
}

func validate(spec FieldSpec, rawValue string) Result {
	value := sanitizer.Trim(rawValue)
	res := Result{Field: spec.ID, Value: value}
	if spec.Normalize != nil {
		res.Value = spec.Normalize(value)
	}

	if failure := validator.First(rules(spec, value)...); failure != nil {
		res.Message = failure.Message
		res.Key = failure.TranslationKey
		res.Params = failure.TranslationValues
		return res
	}

	res.Valid = true
	return res
}

// rules lists checks in evaluation order: presence, forbidden character,
// length or range, then format. Every format stage starts with UTF-8
// validity.
func rules(spec FieldSpec, value string) []validator.Rule {
	label := spec.Label
	if label == "" {
		label = string(spec.ID)
	}

	var rs []validator.Rule
	if spec.Required {
		rs = append(rs, validator.Required(label, value))
	} else if value == "" {
		return nil
	}
	if spec.ForbidComma {
		rs = append(rs, validator.NoComma(label, value))
	}

	if spec.MinLen > 0 {
		rs = append(rs, validator.MinLen(label, value, spec.MinLen))
	}
	if spec.MaxLen > 0 {
		rs = append(rs, validator.MaxLen(label, value, spec.MaxLen))
	}

	if spec.Integer {
		rs = append(rs, validator.Integer(label, value))
	}
	if spec.Range != nil {
		rs = append(rs, validator.IntBetween(label, value, spec.Range.Min, spec.Range.Max))
	}

	rs = append(rs, validator.ValidUTF8(label, value))
	switch spec.Format {
	case FormatEmail:
		rs = append(rs, validator.Email(label, value))
	case FormatCanadianPostalCode:
		rs = append(rs, validator.CanadianPostalCode(label, sanitizer.ToUpper(value)))
	}
	if spec.Pattern != nil {
		rs = append(rs, validator.Matches(label, value, spec.Pattern, spec.PatternName))
	}

	return rs
}
