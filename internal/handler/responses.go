package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/goccy/go-json"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse is the body of the plain health endpoint
type OKResponse struct {
	OK bool `json:"ok"`
}

// Helper functions for responding

var encodeBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	buf.Reset()
	defer encodeBuffers.Put(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to a status and user-facing message.
// Server-side failures are logged with their details, which never reach the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err)
	} else {
		log.Warn(action+" rejected", "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnauthorized       = "Unauthorized"
	ErrMsgForbidden          = "You are not allowed to do that"
	ErrMsgInvalidInput       = "Invalid request. Please check your inputs."

	// Catalog and tracking messages
	ErrMsgInvalidTmdbID = "Invalid TMDB id"
	ErrMsgInvalidRating = "Rating must be between 1 and 5"

	// Playlist messages
	ErrMsgPlaylistNotFound     = "Playlist not found."
	ErrMsgInvalidPlaylistName  = "Playlist name must be 1 to 100 characters"
	ErrMsgFavoritesNotEditable = "Use the favorites endpoints to change favorites"

	// Review messages
	ErrMsgReviewNotFound = "Review not found"
	ErrMsgCommentTooLong = "Comment must be at most 2000 characters"

	// Profile messages
	ErrMsgProfileNotFound   = "User not found"
	ErrMsgInvalidUsername   = "Username must be 3 to 30 letters, digits, dots or underscores"
	ErrMsgInvalidProfileURL = "Profile image must be an http(s) URL"
	ErrMsgUsernameTaken     = "Username is already taken"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Anything unrecognized is a data-store failure and becomes a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidTmdbID):
		return http.StatusBadRequest, ErrMsgInvalidTmdbID
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, ErrMsgInvalidRating
	case errors.Is(err, domain.ErrInvalidPlaylistName):
		return http.StatusBadRequest, ErrMsgInvalidPlaylistName
	case errors.Is(err, domain.ErrCommentTooLong):
		return http.StatusBadRequest, ErrMsgCommentTooLong
	case errors.Is(err, domain.ErrInvalidUsername):
		return http.StatusBadRequest, ErrMsgInvalidUsername
	case errors.Is(err, domain.ErrInvalidProfileURL):
		return http.StatusBadRequest, ErrMsgInvalidProfileURL
	case errors.Is(err, domain.ErrFavoritesNotEditable):
		return http.StatusBadRequest, ErrMsgFavoritesNotEditable
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInput
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbidden
	case errors.Is(err, domain.ErrPlaylistNotFound):
		return http.StatusNotFound, ErrMsgPlaylistNotFound
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFound
	case errors.Is(err, domain.ErrReviewNotFound):
		return http.StatusNotFound, ErrMsgReviewNotFound
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTaken
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
