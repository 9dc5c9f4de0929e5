package adoption

import "errors"

// ErrUnknownField is returned when a field ID has no FieldSpec. It signals an
// integration bug and must never be treated as a passing validation.
var ErrUnknownField = errors.New("adoption: unknown form field")
