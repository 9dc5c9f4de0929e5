package adoption

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrymomot/petadopt/pkg/validator"
)

// Submission is the adoption listing form as posted by browsers or API clients.
type Submission struct {
	Name        string   `form:"name" json:"name"`
	Species     string   `form:"species" json:"species"`
	Breed       string   `form:"breed" json:"breed"`
	Age         AgeInput `form:"age" json:"age"`
	Description string   `form:"description" json:"description"`
	OwnerEmail  string   `form:"owner_email" json:"owner_email"`
	Address     string   `form:"address" json:"address"`
	City        string   `form:"city" json:"city"`
	PostalCode  string   `form:"postal_code" json:"postal_code"`
}

// AgeInput keeps the raw age text. JSON clients may send either a number or
// a string; both end up as text so the engine reports the same messages.
type AgeInput string

func (a *AgeInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AgeInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = AgeInput(n.String())
	return nil
}

// Snapshot maps the submission onto engine field IDs.
func (s Submission) Snapshot() Snapshot {
	return Snapshot{
		FieldName:        s.Name,
		FieldSpecies:     s.Species,
		FieldBreed:       s.Breed,
		FieldAge:         string(s.Age),
		FieldDescription: s.Description,
		FieldEmail:       s.OwnerEmail,
		FieldAddress:     s.Address,
		FieldCity:        s.City,
		FieldPostalCode:  s.PostalCode,
	}
}

// Report is the whole-form outcome of one validation pass.
type Report struct {
	Valid   bool     `json:"valid"`
	Results []Result `json:"results"`
}

// Validate runs the engine over every field of the submission.
func (e *Engine) Validate(s Submission) Report {
	valid, results := e.ValidateAll(s.Snapshot())
	return Report{Valid: valid, Results: results}
}

// Result returns the outcome for id.
func (r Report) Result(id FieldID) (Result, bool) {
	for _, res := range r.Results {
		if res.Field == id {
			return res, true
		}
	}
	return Result{}, false
}

// Value returns the trimmed, normalized value reported for id.
func (r Report) Value(id FieldID) string {
	res, _ := r.Result(id)
	return res.Value
}

// Errors converts failing results into validator.ValidationErrors keyed by
// field ID. It returns nil for a valid report.
func (r Report) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, res := range r.Results {
		if res.Valid {
			continue
		}
		errs.Add(validator.ValidationError{
			Field:             string(res.Field),
			Message:           res.Message,
			TranslationKey:    res.Key,
			TranslationValues: res.Params,
		})
	}
	return errs
}
