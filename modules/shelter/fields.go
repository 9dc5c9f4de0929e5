package shelter

import (
	"context"
	"maps"

	"github.com/dmitrymomot/petadopt/handler"
	"github.com/dmitrymomot/petadopt/pkg/i18n"
	"github.com/dmitrymomot/petadopt/svc/adoption"
)

// formField ties an engine field to its HTML form name and element ID.
type formField struct {
	ID        adoption.FieldID
	Name      string
	DOMID     string
	InputType string
	Multiline bool
}

// formFields is the adoption form in display order.
var formFields = []formField{
	{ID: adoption.FieldName, Name: "name", DOMID: "animalName", InputType: "text"},
	{ID: adoption.FieldSpecies, Name: "species", DOMID: "animalSpecies", InputType: "text"},
	{ID: adoption.FieldBreed, Name: "breed", DOMID: "animalBreed", InputType: "text"},
	{ID: adoption.FieldAge, Name: "age", DOMID: "animalAge", InputType: "number"},
	{ID: adoption.FieldDescription, Name: "description", DOMID: "animalDescription", Multiline: true},
	{ID: adoption.FieldEmail, Name: "owner_email", DOMID: "ownerEmail", InputType: "email"},
	{ID: adoption.FieldAddress, Name: "address", DOMID: "address", InputType: "text"},
	{ID: adoption.FieldCity, Name: "city", DOMID: "city", InputType: "text"},
	{ID: adoption.FieldPostalCode, Name: "postal_code", DOMID: "postalCode", InputType: "text"},
}

// formNames maps engine field IDs to form names.
var formNames = func() map[string]string {
	m := make(map[string]string, len(formFields))
	for _, f := range formFields {
		m[string(f.ID)] = f.Name
	}
	return m
}()

func fieldByID(id adoption.FieldID) (formField, bool) {
	for _, f := range formFields {
		if f.ID == id {
			return f, true
		}
	}
	return formField{}, false
}

// feedbackID is the element that shows a field's validation message.
func (f formField) feedbackID() string {
	return f.DOMID + "Error"
}

// message renders a validation result in the request language. The engine
// message is kept when the catalog has no entry for its key.
func message(ctx context.Context, tr *i18n.Translator, res adoption.Result) string {
	if res.Valid {
		return ""
	}
	lang := i18n.Locale(ctx)
	if res.Key == "" || !tr.Has(lang, res.Key) {
		return res.Message
	}
	params := maps.Clone(res.Params)
	if params == nil {
		params = map[string]any{}
	}
	params["field"] = tr.T(lang, "fields."+string(res.Field), nil)
	return tr.T(lang, res.Key, params)
}

// fieldErrors translates every failing result and keys it by form name.
func fieldErrors(ctx context.Context, tr *i18n.Translator, report adoption.Report) handler.ValidationError {
	errs := report.Errors()
	for i := range errs {
		res, _ := report.Result(adoption.FieldID(errs[i].Field))
		errs[i].Message = message(ctx, tr, res)
	}
	return handler.FromValidationErrors(errs, formNames)
}

// formValues maps a submission back to form names for redisplay.
func formValues(sub adoption.Submission) map[string]string {
	snap := sub.Snapshot()
	values := make(map[string]string, len(formFields))
	for _, f := range formFields {
		values[f.Name] = snap[f.ID]
	}
	return values
}
