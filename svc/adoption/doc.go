// Package adoption validates and normalizes the adoption listing form.
//
// Each form field is described by a FieldSpec. The Engine evaluates a field
// by trimming the raw value and then applying its checks in a fixed order:
// presence, forbidden comma, length or numeric range, and finally format
// (valid UTF-8, email grammar, Canadian postal code). The first failing check wins and
// its message is the only one reported.
//
//	engine := adoption.NewEngine()
//	res, err := engine.ValidateField(adoption.FieldName, "ab")
//	// err == nil, res.Valid == false, res.Message == "name must be at least 3 characters long."
//
//	ok, results := engine.ValidateAll(adoption.Snapshot{...})
//
// Validation failures are data. The only error is ErrUnknownField, returned
// when a caller asks for a field the engine does not know.
//
// NormalizePostalCodeInput is applied on every keystroke by the UI and is
// idempotent.
package adoption
