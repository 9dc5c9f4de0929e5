package binder

import (
	"errors"
	"net/http"
)

// Query binds `query:"name"` fields from the URL query string.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		err := bindTagged(v, "query", func(key string) ([]string, bool) {
			values, ok := q[key]
			return values, ok
		})
		if err != nil {
			return errors.Join(ErrFailedToParseQuery, err)
		}
		return nil
	}
}
