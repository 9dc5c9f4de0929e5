package sanitizer

var postalCodeInput = Compose(ToUpper, KeepASCIIAlphanumeric, spacePostalCode)

// FormatPostalCodeInput reshapes partially typed Canadian postal codes.
// The value is uppercased, stripped to ASCII letters and digits, and once it
// is longer than three characters a single space is placed after the third
// one. Characters past the sixth cleaned one are dropped, so the result never
// exceeds "A1A 1A1". Applying it twice yields the same value.
func FormatPostalCodeInput(postalCode string) string {
	return postalCodeInput(postalCode)
}

// spacePostalCode expects cleaned ASCII input.
func spacePostalCode(code string) string {
	if len(code) <= 3 {
		return code
	}
	return code[:3] + " " + code[3:min(len(code), 6)]
}
