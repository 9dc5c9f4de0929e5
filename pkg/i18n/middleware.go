package i18n

import (
	"net/http"
	"time"
)

const (
	DefaultQueryParam = "lang"
	DefaultCookieName = "lang"
)

// Middleware stores the request language in the context. Precedence is the
// query parameter, then the cookie, then Accept-Language. A supported
// language given in the query is remembered in the cookie for a year.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, fromQuery := t.Supported(r.URL.Query().Get(DefaultQueryParam))
			if fromQuery {
				http.SetCookie(w, &http.Cookie{
					Name:     DefaultCookieName,
					Value:    lang,
					Path:     "/",
					Expires:  time.Now().AddDate(1, 0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			} else if c, err := r.Cookie(DefaultCookieName); err == nil {
				lang, _ = t.Supported(c.Value)
			}
			if lang == "" {
				lang = t.Negotiate(r.Header.Get("Accept-Language"))
			}

			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), lang)))
		})
	}
}
