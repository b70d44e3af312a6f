package handler

import (
	"net/http"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/tracking"
)

// SetWatchedRequest is the body of POST /shows/{tmdbId}/watched.
// A missing Watched toggles the current state.
type SetWatchedRequest struct {
	Watched *bool `json:"watched,omitempty"`
	MediaFields
}

// SetListedRequest is the body of POST /shows/{tmdbId}/listed.
// A missing Listed toggles the current state.
type SetListedRequest struct {
	Listed *bool `json:"listed,omitempty"`
	MediaFields
}

// ShowsResponse wraps the caller's tracked shows
type ShowsResponse struct {
	Filter domain.ShowFilter `json:"filter"`
	Shows  []domain.UserShow `json:"shows"`
}

// ShowHandler handles watch-state HTTP requests
type ShowHandler struct {
	trackingSvc tracking.Service
}

// NewShowHandler creates a new show handler
func NewShowHandler(trackingSvc tracking.Service) *ShowHandler {
	return &ShowHandler{trackingSvc: trackingSvc}
}

// HandleList lists the caller's tracked shows
// @Summary Tracked shows
// @Tags shows
// @Produce json
// @Security BearerAuth
// @Param filter query string false "watched, listed or all"
// @Success 200 {object} ShowsResponse
// @Failure 400 {object} ErrorResponse
// @Router /shows [get]
func (h *ShowHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	filter, err := domain.ParseShowFilter(GetOptionalQueryParam(r, "filter", string(domain.ShowFilterAll)))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidFilter)
		return
	}

	shows, err := h.trackingSvc.ListShows(r.Context(), caller.Subject, filter)
	if err != nil {
		respondServiceError(w, r, "List shows", err)
		return
	}
	if shows == nil {
		shows = []domain.UserShow{}
	}
	respondJSON(w, http.StatusOK, ShowsResponse{Filter: filter, Shows: shows})
}

// HandleState returns the caller's state for one show
// @Summary Show state
// @Tags shows
// @Produce json
// @Security BearerAuth
// @Param tmdbId path int true "TMDB id"
// @Success 200 {object} domain.ShowState
// @Router /shows/{tmdbId}/state [get]
func (h *ShowHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	tmdbID, ok := pathInt(w, r, "tmdbId")
	if !ok {
		return
	}

	state, err := h.trackingSvc.GetShowState(r.Context(), caller.Subject, tmdbID)
	if err != nil {
		respondServiceError(w, r, "Get show state", err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleSetWatched sets or toggles the watched flag
// @Summary Set watched
// @Tags shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tmdbId path int true "TMDB id"
// @Param request body SetWatchedRequest false "Desired state and catalog fields"
// @Success 200 {object} domain.ShowState
// @Router /shows/{tmdbId}/watched [post]
func (h *ShowHandler) HandleSetWatched(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	tmdbID, ok := pathInt(w, r, "tmdbId")
	if !ok {
		return
	}

	var req SetWatchedRequest
	if err := DecodeOptionalRequest(r, w, &req, "Set watched"); err != nil {
		return
	}

	state, err := h.trackingSvc.SetWatched(r.Context(), caller.Subject, req.toInput(tmdbID), req.Watched)
	if err != nil {
		respondServiceError(w, r, "Set watched", err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleSetListed sets or toggles the want-to-watch flag
// @Summary Set want-to-watch
// @Tags shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tmdbId path int true "TMDB id"
// @Param request body SetListedRequest false "Desired state and catalog fields"
// @Success 200 {object} domain.ShowState
// @Router /shows/{tmdbId}/listed [post]
func (h *ShowHandler) HandleSetListed(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	tmdbID, ok := pathInt(w, r, "tmdbId")
	if !ok {
		return
	}

	var req SetListedRequest
	if err := DecodeOptionalRequest(r, w, &req, "Set listed"); err != nil {
		return
	}

	state, err := h.trackingSvc.SetListed(r.Context(), caller.Subject, req.toInput(tmdbID), req.Listed)
	if err != nil {
		respondServiceError(w, r, "Set listed", err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}
