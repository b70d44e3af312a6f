package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SceneIt_Go/internal/auth"
	"github.com/osse101/SceneIt_Go/internal/domain"
)

const testCaller = "user-1"

// serve routes a single request through a chi router so URL params resolve.
// An empty caller sends the request anonymously.
func serve(t *testing.T, method, pattern, target string, body interface{}, caller string, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req = req.WithContext(auth.WithIdentity(req.Context(), &domain.Identity{Subject: caller, Username: "alice"}))
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }
