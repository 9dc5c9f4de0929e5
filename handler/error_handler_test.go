package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/petadopt/handler"
)

func errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "page: "+p.Error)
		return err
	})
}

func errorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="toast">`+p.Type+": "+p.Message+"</div>")
		return err
	})
}

func translate(_ context.Context, key string) string {
	return map[string]string{
		"errors.not_found": "Page not found",
		"errors.internal":  "Something went wrong",
	}[key]
}

func newTestErrorHandler(buf *bytes.Buffer) handler.ErrorHandler[handler.Context] {
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  errorPage,
		ErrorToast: errorToast,
		Translate:  translate,
	})
}

func TestErrorHandler_Page(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	eh := newTestErrorHandler(&logs)

	w := httptest.NewRecorder()
	eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/animal/9", nil)), handler.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "page: Page not found", w.Body.String())
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestErrorHandler_ServerErrorLogsAtError(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	eh := newTestErrorHandler(&logs)

	w := httptest.NewRecorder()
	eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "page: Something went wrong", w.Body.String())
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "db down")
}

func TestErrorHandler_JSON(t *testing.T) {
	t.Parallel()

	eh := newTestErrorHandler(&bytes.Buffer{})

	w := httptest.NewRecorder()
	eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/api/animal/9", nil)), handler.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Page not found"}`, w.Body.String())

	ve := handler.NewValidationError()
	ve.Add("city", "city is required.")
	req := httptest.NewRequest(http.MethodPost, "/add-animal", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	vw := httptest.NewRecorder()
	eh(handler.NewContext(vw, req), errors.Join(handler.ErrBadRequest, ve))
	assert.Equal(t, http.StatusBadRequest, vw.Code)
	assert.JSONEq(t, `{"success":false,"errors":{"city":"city is required."}}`, vw.Body.String())
}

func TestErrorHandler_DataStarToast(t *testing.T) {
	t.Parallel()

	eh := newTestErrorHandler(&bytes.Buffer{})

	w := httptest.NewRecorder()
	eh(handler.NewContext(w, dataStarRequest(http.MethodPost, "/add-animal/validate")), errors.New("boom"))

	body := w.Body.String()
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "#toast-container")
	assert.Contains(t, body, "error: Something went wrong")
}

func TestErrorHandler_NoPageConfigured(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(slog.New(slog.DiscardHandler), handler.ErrorHandlerConfig{})

	w := httptest.NewRecorder()
	eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "errors.not_found")
}
