package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMessage replaces the "error" message of a JSONError body.
func WithJSONMessage(msg string) JSONOption {
	return func(r *jsonResponse) {
		if body, ok := r.body.(errorBody); ok {
			body.Error = msg
			r.body = body
		}
	}
}

// JSON encodes v as the response body with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type errorBody struct {
	Error string `json:"error"`
}

type validationBody struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors"`
}

// JSONError renders err. ValidationError becomes
// {"success":false,"errors":{field:message}} with status 400, HTTPError
// {"error":key} with its own status, anything else a 500.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusInternalServerError,
		body:   errorBody{Error: ErrInternalServerError.Key},
	}

	var validationErr ValidationError
	var httpErr HTTPError
	switch {
	case errors.As(err, &validationErr):
		r.status = http.StatusBadRequest
		r.body = validationBody{Errors: validationErr.First()}
	case errors.As(err, &httpErr):
		r.status = httpErr.Code
		r.body = errorBody{Error: httpErr.Key}
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}
