package i18n

import "errors"

var (
	ErrParseCatalog   = errors.New("failed to parse translation catalog")
	ErrEmptyCatalog   = errors.New("translation catalog has no languages")
	ErrUnknownDefault = errors.New("default language has no translations")
)
