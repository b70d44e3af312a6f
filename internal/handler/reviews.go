package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/review"
)

// CreateReviewRequest is the body of POST /api/reviews.
// UserID is accepted for older clients and must match the caller.
type CreateReviewRequest struct {
	ShowID  int    `json:"showId" validate:"gt=0,lte=2147483647"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
	UserID  string `json:"userId,omitempty"`
}

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	reviewSvc review.Service
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewSvc review.Service) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

// HandleCreate posts a review authored by the caller
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReviewRequest true "Review"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/reviews [post]
func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create review"); err != nil {
		return
	}
	if !checkClaimedID(w, r, caller.Subject, req.UserID) {
		return
	}

	created, err := h.reviewSvc.CreateReview(r.Context(), caller.Subject, domain.ReviewInput{
		ShowID:  req.ShowID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondServiceError(w, r, "Create review", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// HandleListByShow lists reviews of a show, newest first
// @Summary Reviews for a show
// @Tags reviews
// @Produce json
// @Param showId path int true "TMDB id"
// @Param limit query int false "Maximum reviews (default 50, max 200)"
// @Success 200 {array} domain.Review
// @Router /api/reviews/show/{showId} [get]
func (h *ReviewHandler) HandleListByShow(w http.ResponseWriter, r *http.Request) {
	showID, ok := pathInt(w, r, "showId")
	if !ok {
		return
	}

	limit := 0
	if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		limit = v
	}

	reviews, err := h.reviewSvc.ListByShow(r.Context(), showID, limit)
	if err != nil {
		respondServiceError(w, r, "List show reviews", err)
		return
	}
	respondReviews(w, reviews)
}

// HandleListByUser lists reviews written by a profile, newest first
// @Summary Reviews by a user
// @Tags reviews
// @Produce json
// @Param userId path string true "Profile id"
// @Success 200 {array} domain.Review
// @Router /api/reviews/user/{userId} [get]
func (h *ReviewHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	h.listByUser(w, r, chi.URLParam(r, "userId"))
}

func (h *ReviewHandler) listByUser(w http.ResponseWriter, r *http.Request, profileID string) {
	reviews, err := h.reviewSvc.ListByUser(r.Context(), profileID)
	if err != nil {
		respondServiceError(w, r, "List user reviews", err)
		return
	}
	respondReviews(w, reviews)
}

// HandleDelete deletes a review written by the caller
// @Summary Delete review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param reviewId path string true "Review id"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/reviews/{reviewId} [delete]
func (h *ReviewHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	reviewID, err := uuid.Parse(chi.URLParam(r, "reviewId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidReviewID)
		return
	}

	if err := h.reviewSvc.DeleteReview(r.Context(), caller.Subject, reviewID); err != nil {
		respondServiceError(w, r, "Delete review", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgReviewDeleted})
}

func respondReviews(w http.ResponseWriter, reviews []domain.Review) {
	if reviews == nil {
		reviews = []domain.Review{}
	}
	respondJSON(w, http.StatusOK, reviews)
}
