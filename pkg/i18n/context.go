package i18n

import "context"

type localeKey struct{}

func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey{}, lang)
}

// Locale returns the request language, or DefaultLanguage when unset.
func Locale(ctx context.Context) string {
	if lang, ok := ctx.Value(localeKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}
