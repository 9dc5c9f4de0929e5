package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/petadopt/pkg/logger"
	"github.com/dmitrymomot/petadopt/pkg/requestid"
)

func serve(t *testing.T, header string) (seen string, echoed string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Run("keeps valid incoming id", func(t *testing.T) {
		seen, echoed := serve(t, "abc-123_X")
		assert.Equal(t, "abc-123_X", seen)
		assert.Equal(t, seen, echoed)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"invalid characters", "abc 123<script>"},
		{"too long", strings.Repeat("a", 129)},
	}
	for _, tt := range tests {
		t.Run("generates for "+tt.name, func(t *testing.T) {
			seen, echoed := serve(t, tt.header)
			_, err := uuid.Parse(seen)
			require.NoError(t, err)
			assert.Equal(t, seen, echoed)
		})
	}
}

func TestFromContext(t *testing.T) {
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "x", requestid.FromContext(requestid.WithContext(context.Background(), "x")))
}

func TestLogExtractor(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LogExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	buf.Reset()
	log.InfoContext(context.Background(), "hello")
	assert.NotContains(t, buf.String(), "request_id")
}
