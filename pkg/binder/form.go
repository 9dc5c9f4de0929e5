package binder

import (
	"errors"
	"net/http"
)

// DefaultMaxMemory bounds multipart parsing held in memory.
const DefaultMaxMemory = 10 << 20

// Form binds `form:"name"` fields from url-encoded or multipart bodies.
// Other content types yield ErrBinderNotApplicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch mediaType(r.Header.Get("Content-Type")) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return errors.Join(ErrFailedToParseForm, err)
			}
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return errors.Join(ErrFailedToParseForm, err)
			}
		default:
			return ErrBinderNotApplicable
		}

		err := bindTagged(v, "form", func(key string) ([]string, bool) {
			values, ok := r.PostForm[key]
			return values, ok
		})
		if err != nil {
			return errors.Join(ErrFailedToParseForm, err)
		}
		return nil
	}
}
