package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/SceneIt_Go/internal/auth"
	"github.com/osse101/SceneIt_Go/internal/database"
	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// PingResponse echoes the verified caller
type PingResponse struct {
	OK   bool             `json:"ok"`
	User *domain.Identity `json:"user"`
}

// HandleRoot answers the plain-text banner at /
func HandleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(MsgBanner))
	}
}

// HandleHealth is the minimal health probe kept for existing clients
// @Summary Health probe
// @Tags health
// @Produce json
// @Success 200 {object} OKResponse
// @Router /health [get]
func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, OKResponse{OK: true})
	}
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz provides a readiness check that validates database connectivity
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (database connected)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "database connection failed",
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandlePrivatePing confirms a bearer token is accepted
// @Summary Authenticated ping
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PingResponse
// @Failure 401 {object} ErrorResponse
// @Router /private/ping [get]
func HandlePrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		if id == nil {
			respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
			return
		}
		respondJSON(w, http.StatusOK, PingResponse{OK: true, User: id})
	}
}
