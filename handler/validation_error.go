package handler

import (
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrymomot/petadopt/pkg/validator"
)

// ValidationError maps request fields to their messages.
type ValidationError url.Values

func NewValidationError() ValidationError {
	return ValidationError{}
}

// FromValidationErrors groups validator failures by field. rename maps
// validator field names to request field names; unmapped names pass through.
func FromValidationErrors(errs validator.ValidationErrors, rename map[string]string) ValidationError {
	ve := NewValidationError()
	for _, e := range errs {
		field := e.Field
		if to, ok := rename[field]; ok {
			field = to
		}
		ve.Add(field, e.Message)
	}
	return ve
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return url.Values(e).Has(field)
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// First returns the first message of every field.
func (e ValidationError) First() map[string]string {
	out := make(map[string]string, len(e))
	for field, msgs := range e {
		if len(msgs) > 0 {
			out[field] = msgs[0]
		}
	}
	return out
}

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
