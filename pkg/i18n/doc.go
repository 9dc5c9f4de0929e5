// Package i18n loads YAML message catalogs, negotiates the request language
// and renders messages with %{name} placeholders.
//
//	catalog, err := i18n.LoadFS(locales, "locales")
//	tr, err := i18n.NewTranslator(catalog, "en")
//	r.Use(i18n.Middleware(tr))
//	msg := tr.T(i18n.Locale(ctx), "validation.required", map[string]any{"field": "name"})
package i18n
