package binder

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path binds `path:"name"` fields from chi route parameters.
func Path() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return ErrBinderNotApplicable
		}
		err := bindTagged(v, "path", func(key string) ([]string, bool) {
			for i, k := range rctx.URLParams.Keys {
				if k == key {
					return []string{rctx.URLParams.Values[i]}, true
				}
			}
			return nil, false
		})
		if err != nil {
			return errors.Join(ErrFailedToParsePath, err)
		}
		return nil
	}
}
