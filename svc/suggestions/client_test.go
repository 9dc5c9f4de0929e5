package suggestions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/petadopt/svc/suggestions"
)

func newClient(t *testing.T, h http.HandlerFunc) (*suggestions.Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return suggestions.NewClient(suggestions.Config{BaseURL: srv.URL + "/", Timeout: time.Second}, nil), &calls
}

func TestSuggest_FiltersCurrentAnimal(t *testing.T) {
	client, calls := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/random-animals", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("count"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Rex"},{"id":2,"name":"Mia"},{"id":3,"name":"Kiwi"}]`))
	})

	got := client.Suggest(context.Background(), 2)
	require.Len(t, got.Animals, 2)
	assert.Equal(t, int64(1), got.Animals[0].ID)
	assert.Equal(t, int64(3), got.Animals[1].ID)
	assert.Empty(t, got.Message)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSuggest_Failures(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantMsg  string
		wantKey  string
		maxCalls int32
	}{
		{
			name: "server error is not retried",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantMsg: suggestions.MessageUnavailable,
			wantKey: suggestions.KeyUnavailable,
		},
		{
			name: "not a list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			},
			wantMsg: suggestions.MessageUnavailable,
			wantKey: suggestions.KeyUnavailable,
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`null`))
			},
			wantMsg: suggestions.MessageUnavailable,
			wantKey: suggestions.KeyUnavailable,
		},
		{
			name: "only the current animal",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"id":7}]`))
			},
			wantMsg: suggestions.MessageEmpty,
			wantKey: suggestions.KeyEmpty,
		},
		{
			name: "empty list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
			wantMsg: suggestions.MessageEmpty,
			wantKey: suggestions.KeyEmpty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newClient(t, tt.handler)
			got := client.Suggest(context.Background(), 7)
			assert.Empty(t, got.Animals)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, tt.wantKey, got.MessageKey)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestSuggest_Unreachable(t *testing.T) {
	client := suggestions.NewClient(suggestions.Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, nil)
	got := client.Suggest(context.Background(), 1)
	assert.Equal(t, suggestions.MessageUnavailable, got.Message)
}
