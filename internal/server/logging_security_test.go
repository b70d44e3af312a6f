package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/shows", nil)
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("Cookie", "sb-access-token=abc")
	req.Header.Set("User-Agent", "TestAgent")

	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "mytoken", "Authorization value leaked")
	assert.NotContains(t, out, "sb-access-token", "Cookie value leaked")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, LogMsgRequestCompleted)
}

func TestLoggingMiddleware_SkipsProbes(t *testing.T) {
	buf := captureLogs(t)

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for _, path := range QuietPaths {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Empty(t, buf.String())
}

func TestSecurityLoggingMiddleware_CountsRejectedTokens(t *testing.T) {
	captureLogs(t)
	detector := NewSuspiciousActivityDetector()

	status := http.StatusUnauthorized
	h := SecurityLoggingMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	send := func(withToken bool) {
		req := httptest.NewRequest(http.MethodGet, "/shows", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		if withToken {
			req.Header.Set("Authorization", "Bearer bad")
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	send(true)
	send(true)
	send(false) // anonymous 401s are not failed authentications
	status = http.StatusOK
	send(true)

	assert.Equal(t, 3, detector.RecordFailedAuth("10.0.0.1"))
}
