package binder_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/petadopt/pkg/binder"
)

type label string

type request struct {
	ID      int64    `path:"id"`
	Page    int      `query:"page"`
	Tags    []string `query:"tag"`
	Debug   *bool    `query:"debug"`
	Name    string   `form:"name" json:"name"`
	Age     label    `form:"age" json:"age"`
	Skipped string   `form:"-" query:"-"`
	hidden  string   `form:"hidden"`
}

func TestForm_URLEncoded(t *testing.T) {
	body := url.Values{"name": {"Rex"}, "age": {"4"}, "hidden": {"x"}, "Skipped": {"y"}}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	var req request
	require.NoError(t, binder.Form()(r, &req))
	assert.Equal(t, "Rex", req.Name)
	assert.Equal(t, label("4"), req.Age)
	assert.Empty(t, req.Skipped)
	assert.Empty(t, req.hidden)
}

func TestForm_Multipart(t *testing.T) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("name", "Mia"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	var req request
	require.NoError(t, binder.Form()(r, &req))
	assert.Equal(t, "Mia", req.Name)
}

func TestForm_NotApplicable(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	r.Header.Set("Content-Type", "application/json")

	var req request
	assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrBinderNotApplicable)
}

func TestForm_InvalidTarget(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=x"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var s string
	assert.ErrorIs(t, binder.Form()(r, &s), binder.ErrInvalidTarget)
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name    string
		ct      string
		body    string
		wantErr error
		want    string
	}{
		{"valid", "application/json", `{"name":"Rex","extra":true}`, nil, "Rex"},
		{"charset param", "application/json; charset=utf-8", `{"name":"Mia"}`, nil, "Mia"},
		{"empty body", "application/json", ``, binder.ErrFailedToParseJSON, ""},
		{"malformed", "application/json", `{"name":`, binder.ErrFailedToParseJSON, ""},
		{"trailing data", "application/json", `{"name":"a"} {"name":"b"}`, binder.ErrFailedToParseJSON, ""},
		{"form body", "application/x-www-form-urlencoded", `name=a`, binder.ErrBinderNotApplicable, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", tt.ct)

			var req request
			err := binder.JSON()(r, &req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Name)
		})
	}
}

func TestJSON_SkipsDataStar(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Rex"}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Datastar-Request", "true")

	var req request
	assert.ErrorIs(t, binder.JSON()(r, &req), binder.ErrBinderNotApplicable)
}

func TestQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=3&tag=a&tag=b&debug=true", nil)

	var req request
	require.NoError(t, binder.Query()(r, &req))
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, []string{"a", "b"}, req.Tags)
	require.NotNil(t, req.Debug)
	assert.True(t, *req.Debug)

	bad := httptest.NewRequest(http.MethodGet, "/?page=two", nil)
	assert.ErrorIs(t, binder.Query()(bad, &request{}), binder.ErrFailedToParseQuery)
}

func TestPath(t *testing.T) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "42")
	r := httptest.NewRequest(http.MethodGet, "/animal/42", nil)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	var req request
	require.NoError(t, binder.Path()(r, &req))
	assert.Equal(t, int64(42), req.ID)

	rctx.URLParams = chi.RouteParams{}
	rctx.URLParams.Add("id", "abc")
	assert.ErrorIs(t, binder.Path()(r, &request{}), binder.ErrFailedToParsePath)

	noRoute := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.ErrorIs(t, binder.Path()(noRoute, &request{}), binder.ErrBinderNotApplicable)
}

func TestSignals(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Rex","age":"3"}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Datastar-Request", "true")

	var req request
	require.NoError(t, binder.Signals()(r, &req))
	assert.Equal(t, "Rex", req.Name)
	assert.Equal(t, label("3"), req.Age)

	plain := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	assert.ErrorIs(t, binder.Signals()(plain, &request{}), binder.ErrBinderNotApplicable)
}

type embeddedRequest struct {
	request
	Field string `query:"field"`
}

func TestQuery_Embedded(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?field=name&page=2", nil)

	var req embeddedRequest
	require.NoError(t, binder.Query()(r, &req))
	assert.Equal(t, "name", req.Field)
	assert.Equal(t, 2, req.Page)
}
