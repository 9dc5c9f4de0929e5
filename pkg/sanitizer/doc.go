// Package sanitizer provides string transformations used to clean user input
// before it is validated, stored or rendered.
//
// Functions are plain func(string) string values so they compose with Apply
// and Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
//	query := clean(raw)
//
// FormatPostalCodeInput is the keystroke normalizer for Canadian postal
// codes; StripTags removes markup through a bluemonday strict policy.
package sanitizer
