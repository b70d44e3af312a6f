package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SceneIt_Go/internal/auth"
	"github.com/osse101/SceneIt_Go/internal/domain"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func TestHandleRoot(t *testing.T) {
	w := httptest.NewRecorder()
	HandleRoot().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MsgBanner, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestHandleHealth(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealth().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{"Database Connected", nil, http.StatusOK, `"status":"ok"`},
		{"Database Connection Failed", assert.AnError, http.StatusServiceUnavailable, `"message":"database connection failed"`},
		{"Database Timeout", context.DeadlineExceeded, http.StatusServiceUnavailable, `"status":"unavailable"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDBPool{}
			mockDB.On("Ping", mock.Anything).Return(tt.pingErr)

			w := httptest.NewRecorder()
			HandleReadyz(mockDB).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			mockDB.AssertExpectations(t)
		})
	}
}

func TestHandlePrivatePing(t *testing.T) {
	t.Run("With Identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private/ping", nil)
		req = req.WithContext(auth.WithIdentity(req.Context(), &domain.Identity{Subject: "u1", Email: "a@b.c"}))
		w := httptest.NewRecorder()

		HandlePrivatePing().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"user":{"id":"u1","email":"a@b.c"}}`, w.Body.String())
	})

	t.Run("Without Identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandlePrivatePing().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private/ping", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")

	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
	assert.Contains(t, w.Body.String(), `"goVersion":"go`)
}
