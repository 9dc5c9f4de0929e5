package shelter

import (
	"embed"

	"github.com/dmitrymomot/petadopt/pkg/i18n"
)

//go:embed locales/*.yaml
var Locales embed.FS

// NewTranslator loads the bundled catalogs with English as the default.
func NewTranslator() (*i18n.Translator, error) {
	catalog, err := i18n.LoadFS(Locales, "locales")
	if err != nil {
		return nil, err
	}
	return i18n.NewTranslator(catalog, i18n.DefaultLanguage)
}
