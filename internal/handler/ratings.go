package handler

import (
	"net/http"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/tracking"
)

// SaveRatingRequest is the body of POST /ratings
type SaveRatingRequest struct {
	MediaTmdbID int     `json:"mediaTmdbId" validate:"gt=0,lte=2147483647"`
	Rating      int     `json:"rating" validate:"gte=1,lte=5"`
	Review      *string `json:"review,omitempty" validate:"omitempty,max=2000"`
	MediaFields
}

// SaveRatingResponse answers POST /ratings
type SaveRatingResponse struct {
	Success bool           `json:"success"`
	Rating  *domain.Rating `json:"rating"`
}

// RatingResponse answers GET /ratings/{mediaTmdbId}. Rating is null when unrated.
type RatingResponse struct {
	Rating *domain.Rating `json:"rating"`
}

// RatingHandler handles rating HTTP requests
type RatingHandler struct {
	trackingSvc tracking.Service
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(trackingSvc tracking.Service) *RatingHandler {
	return &RatingHandler{trackingSvc: trackingSvc}
}

// HandleSave stores the caller's rating for a media item
// @Summary Save rating
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveRatingRequest true "Rating"
// @Success 200 {object} SaveRatingResponse
// @Failure 400 {object} ErrorResponse
// @Router /ratings [post]
func (h *RatingHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req SaveRatingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Save rating"); err != nil {
		return
	}

	rating, err := h.trackingSvc.SaveRating(r.Context(), caller.Subject, domain.RatingInput{
		Media:  req.toInput(req.MediaTmdbID),
		Rating: req.Rating,
		Review: req.Review,
	})
	if err != nil {
		respondServiceError(w, r, "Save rating", err)
		return
	}
	respondJSON(w, http.StatusOK, SaveRatingResponse{Success: true, Rating: rating})
}

// HandleGet returns the caller's rating for a media item
// @Summary Get rating
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param mediaTmdbId path int true "TMDB id"
// @Success 200 {object} RatingResponse
// @Router /ratings/{mediaTmdbId} [get]
func (h *RatingHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	tmdbID, ok := pathInt(w, r, "mediaTmdbId")
	if !ok {
		return
	}

	rating, err := h.trackingSvc.GetRating(r.Context(), caller.Subject, tmdbID)
	if err != nil {
		respondServiceError(w, r, "Get rating", err)
		return
	}
	respondJSON(w, http.StatusOK, RatingResponse{Rating: rating})
}
