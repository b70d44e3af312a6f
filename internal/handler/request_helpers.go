package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/osse101/SceneIt_Go/internal/auth"
	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
)

// maxRequestBodyBytes bounds a decoded request body
const maxRequestBodyBytes = 1 << 20

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CreatePlaylistRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create playlist"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, false)
}

// DecodeOptionalRequest is DecodeAndValidateRequest for endpoints whose body may be empty.
// An empty body leaves req at its zero value.
func DecodeOptionalRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, true)
}

func decodeAndValidate(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, allowEmpty bool) error {
	log := logger.FromContext(r.Context())

	var err error
	if !allowEmpty || r.ContentLength != 0 {
		err = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(req)
		if allowEmpty && errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter from the request.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is missing
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// pathInt parses a positive 32-bit URL parameter, responding 400 when it is not one
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	return parsePositiveInt(w, chi.URLParam(r, name), name)
}

// pathInt64 is pathInt for 64-bit ids
func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || v <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return v, true
}

func parsePositiveInt(w http.ResponseWriter, raw, name string) (int, bool) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return int(v), true
}

// requireIdentity returns the verified caller. Routes behind auth.Require always
// have one; a missing identity means the route was mounted without the gate.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*domain.Identity, bool) {
	id := auth.IdentityFromContext(r.Context())
	if id == nil {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return nil, false
	}
	return id, true
}

// viewerID returns the caller's subject, or "" for anonymous requests
func viewerID(r *http.Request) string {
	if id := auth.IdentityFromContext(r.Context()); id != nil {
		return id.Subject
	}
	return ""
}

// checkClaimedID rejects a body-supplied user id that differs from the caller.
// An empty claim is accepted.
func checkClaimedID(w http.ResponseWriter, r *http.Request, caller string, claimed ...string) bool {
	for _, c := range claimed {
		if c != "" && c != caller {
			logger.FromContext(r.Context()).Warn("Claimed user id does not match session",
				"caller", caller,
				"claimed", c)
			respondError(w, http.StatusForbidden, ErrMsgIdentityMismatch)
			return false
		}
	}
	return true
}
