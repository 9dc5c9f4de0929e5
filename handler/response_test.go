package handler_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/petadopt/handler"
	"github.com/dmitrymomot/petadopt/pkg/validator"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func dataStarRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Datastar-Request", "true")
	return r
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    bool
	}{
		{"plain", "/", nil, false},
		{"request header", "/", map[string]string{"Datastar-Request": "true"}, true},
		{"accept sse", "/", map[string]string{"Accept": "text/event-stream"}, true},
		{"query param", "/?datastar=%7B%7D", nil, true},
		{"json accept", "/", map[string]string{"Accept": "application/json"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(r))
		})
	}
}

func TestWantsJSON(t *testing.T) {
	t.Parallel()

	assert.True(t, handler.WantsJSON(httptest.NewRequest(http.MethodGet, "/api/animals", nil)))
	assert.False(t, handler.WantsJSON(httptest.NewRequest(http.MethodGet, "/animals", nil)))

	post := httptest.NewRequest(http.MethodPost, "/add-animal", nil)
	post.Header.Set("Content-Type", "application/json")
	assert.True(t, handler.WantsJSON(post))

	assert.False(t, handler.WantsJSON(dataStarRequest(http.MethodGet, "/api/animals")))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	err := handler.JSON([]int{1, 2}, handler.WithJSONStatus(http.StatusCreated)).
		Render(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `[1,2]`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	ve := handler.NewValidationError()
	ve.Add("name", "name is required.")
	ve.Add("name", "ignored second message")

	tests := []struct {
		name   string
		err    error
		opts   []handler.JSONOption
		status int
		body   string
	}{
		{
			name:   "validation",
			err:    ve,
			status: http.StatusBadRequest,
			body:   `{"success":false,"errors":{"name":"name is required."}}`,
		},
		{
			name:   "http error",
			err:    handler.ErrNotFound,
			status: http.StatusNotFound,
			body:   `{"error":"errors.not_found"}`,
		},
		{
			name:   "http error with message",
			err:    fmt.Errorf("lookup: %w", handler.ErrNotFound),
			opts:   []handler.JSONOption{handler.WithJSONMessage("Animal not found")},
			status: http.StatusNotFound,
			body:   `{"error":"Animal not found"}`,
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"error":"errors.internal"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err, tt.opts...).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required."},
		{Field: "postalCode", Message: "postal code is required."},
	}
	ve := handler.FromValidationErrors(errs, map[string]string{
		"email":      "owner_email",
		"postalCode": "postal_code",
	})

	assert.True(t, ve.Has("owner_email"))
	assert.Equal(t, "postal code is required.", ve.Get("postal_code"))
	assert.False(t, ve.Has("email"))
	assert.Equal(t,
		"validation failed: owner_email: email is required.; postal_code: postal code is required.",
		ve.Error(),
	)
	assert.True(t, handler.NewValidationError().IsEmpty())
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("html", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.Templ(text("<p>hi</p>")).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>hi</p>", w.Body.String())
	})

	t.Run("status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.TemplStatus(http.StatusBadRequest, text("form")).Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "form", w.Body.String())
	})

	t.Run("datastar", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		resp := handler.Templ(text(`<div id="x">hi</div>`), handler.WithTarget("#x"), handler.WithPatchMode(handler.PatchInner))
		require.NoError(t, resp.Render(w, dataStarRequest(http.MethodPost, "/")))
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "datastar-patch-elements")
		assert.Contains(t, w.Body.String(), "#x")
	})
}

func TestTemplPartial(t *testing.T) {
	t.Parallel()

	resp := handler.TemplPartial(text("partial"), text("full"))

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, "full", w.Body.String())

	ds := httptest.NewRecorder()
	require.NoError(t, resp.Render(ds, dataStarRequest(http.MethodGet, "/")))
	assert.Contains(t, ds.Body.String(), "partial")
	assert.NotContains(t, ds.Body.String(), "full")
}

func TestTemplMulti(t *testing.T) {
	t.Parallel()

	resp := handler.TemplMulti(
		handler.Patch(text(`<p id="a">a</p>`), handler.WithTarget("#a")),
		handler.Patch(text(`<p id="b">b</p>`), handler.WithTarget("#b")),
	)

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, `<p id="a">a</p><p id="b">b</p>`, w.Body.String())

	ds := httptest.NewRecorder()
	require.NoError(t, resp.Render(ds, dataStarRequest(http.MethodGet, "/")))
	assert.Equal(t, 2, strings.Count(ds.Body.String(), "datastar-patch-elements"))
}

func TestSignals(t *testing.T) {
	t.Parallel()

	resp := handler.Signals(map[string]string{"postalCode": "H1H 1H1"})

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.JSONEq(t, `{"postalCode":"H1H 1H1"}`, w.Body.String())

	ds := httptest.NewRecorder()
	require.NoError(t, resp.Render(ds, dataStarRequest(http.MethodPost, "/")))
	assert.Contains(t, ds.Body.String(), "datastar-patch-signals")
	assert.Contains(t, ds.Body.String(), "H1H 1H1")
}

func TestSSE(t *testing.T) {
	t.Parallel()

	resp := handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendComponent(text(`<p id="a">a</p>`)); err != nil {
			return err
		}
		if err := stream.SendMultiple(handler.Patch(text(`<p id="b">b</p>`))); err != nil {
			return err
		}
		return stream.SendSignals(map[string]any{"busy": false})
	})

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, dataStarRequest(http.MethodPost, "/")))
	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, "datastar-patch-elements"))
	assert.Contains(t, body, "datastar-patch-signals")

	err := resp.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	var httpErr handler.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/animals").Render(w, httptest.NewRequest(http.MethodPost, "/add-animal", nil)))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/animals", w.Header().Get("Location"))

	ds := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/animals").Render(ds, dataStarRequest(http.MethodPost, "/add-animal")))
	assert.Equal(t, "text/event-stream", ds.Header().Get("Content-Type"))
	assert.Contains(t, ds.Body.String(), "/animals")
}
