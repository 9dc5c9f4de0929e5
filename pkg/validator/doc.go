// Package validator provides small, composable validation rules for form
// values.
//
// Every exported rule constructor returns a Rule: a boolean Check closure
// paired with a ValidationError carrying the message, a translation key and
// translation values. Rules never touch global state, so they are safe to
// build and evaluate from any goroutine.
//
// First runs rules in order and stops at the first failure, so a field
// reports a single message, e.g. presence before format. Callers collect
// failures across fields into ValidationErrors, which implements error.
//
// # Usage
//
//	if failure := validator.First(
//	    validator.Required("email", email),
//	    validator.NoComma("email", email),
//	    validator.Email("email", email),
//	); failure != nil {
//	    // failure.Message == "email is required." etc.
//	}
//
// Messages are English and embed the field argument verbatim. Callers that
// localise output should use TranslationKey and TranslationValues instead.
package validator
