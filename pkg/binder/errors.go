package binder

import "errors"

var (
	// ErrBinderNotApplicable tells handler.Wrap to skip a binder whose
	// content type does not match the request.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")

	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to a struct")
)
