package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "200 logged as info", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "404 logged as warn", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "500 logged as error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf strings.Builder
			logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/timeline/update-progress", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			out := logBuf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "method=POST")
			assert.Contains(t, out, "path=/api/timeline/update-progress")
			assert.Contains(t, out, "remote_addr=192.168.1.1")
			assert.Contains(t, out, "bytes_written=4")
		})
	}
}

func TestLoggingMiddleware_SkipPaths(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	handler := LoggingMiddleware(logger, "/api/health")(http.HandlerFunc(okHandler))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Empty(t, logBuf.String())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/resources/all", nil))
	assert.Contains(t, logBuf.String(), "/api/resources/all")
}

func TestLoggingMiddleware_DoesNotLogSecrets(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	handler := LoggingMiddleware(logger)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"SecurePass2025!"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, logBuf.String(), "SecurePass2025!")
	assert.NotContains(t, logBuf.String(), "secret-token")
}

func TestLoggingMiddleware_PathAndPeer(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	handler := LoggingMiddleware(logger)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/visa/requirements/skilled-worker?x=1", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := logBuf.String()
	assert.Contains(t, out, "path=/api/visa/requirements/skilled-worker ")
	assert.Contains(t, out, "remote_addr=203.0.113.7")
	assert.NotContains(t, out, "10.0.0.1")
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	n, err := rw.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.Equal(t, int64(5), rw.written)
	assert.Equal(t, rec, rw.Unwrap())
}
