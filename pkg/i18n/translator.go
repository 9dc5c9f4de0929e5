package i18n

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 1024

var placeholder = regexp.MustCompile(`%\{([a-zA-Z0-9_]+)\}`)

// Translator resolves keys against a Catalog. Missing keys fall back to the
// default language, then to the key itself. It is safe for concurrent use.
type Translator struct {
	catalog     Catalog
	defaultLang string
	langs       []string
	matcher     language.Matcher
}

// NewTranslator requires the default language to be present in the catalog.
func NewTranslator(c Catalog, defaultLang string) (*Translator, error) {
	if len(c) == 0 {
		return nil, ErrEmptyCatalog
	}
	defaultLang = strings.ToLower(defaultLang)
	if _, ok := c[defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, defaultLang)
	}

	langs := make([]string, 0, len(c))
	for lang := range c {
		if lang != defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	langs = append([]string{defaultLang}, langs...)

	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tags = append(tags, language.Make(l))
	}

	return &Translator{
		catalog:     c,
		defaultLang: defaultLang,
		langs:       langs,
		matcher:     language.NewMatcher(tags),
	}, nil
}

// Languages lists supported codes, default first.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Supported normalizes lang and reports whether the catalog has it.
// Regional variants resolve to their base language ("fr-CA" to "fr").
func (t *Translator) Supported(lang string) (string, bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || len(lang) > 35 {
		return "", false
	}
	if _, ok := t.catalog[lang]; ok {
		return lang, true
	}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		if _, ok := t.catalog[base]; ok {
			return base, true
		}
	}
	return "", false
}

// Negotiate picks the best supported language for an Accept-Language header.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLang
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// T returns the message for key in lang with %{name} placeholders replaced
// from params. Unknown placeholders are left as is.
func (t *Translator) T(lang, key string, params map[string]any) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		return key
	}
	if len(params) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}

// Has reports whether key exists in lang or the default language.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	if keys, ok := t.catalog[strings.ToLower(lang)]; ok {
		if s, ok := keys[key]; ok {
			return s, true
		}
	}
	s, ok := t.catalog[t.defaultLang][key]
	return s, ok
}
