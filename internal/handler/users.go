package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/playlist"
	"github.com/osse101/SceneIt_Go/internal/profile"
	"github.com/osse101/SceneIt_Go/internal/review"
)

// UpdateProfileRequest is the body of PATCH /api/users/me. Omitted fields are unchanged.
type UpdateProfileRequest struct {
	Username        *string `json:"username,omitempty" validate:"omitempty,min=3,max=30,username"`
	About           *string `json:"about,omitempty" validate:"omitempty,max=500"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty" validate:"omitempty,max=2048"`
}

// UserHandler serves profile pages and the caller's own profile
type UserHandler struct {
	profileSvc  profile.Service
	playlists   *PlaylistHandler
	reviews     *ReviewHandler
	playlistSvc playlist.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(profileSvc profile.Service, playlistSvc playlist.Service, reviewSvc review.Service) *UserHandler {
	return &UserHandler{
		profileSvc:  profileSvc,
		playlistSvc: playlistSvc,
		playlists:   &PlaylistHandler{playlistSvc: playlistSvc},
		reviews:     NewReviewHandler(reviewSvc),
	}
}

// HandleGetMe returns the caller's profile, creating it on first use
// @Summary Own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Router /api/users/me [get]
func (h *UserHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	p, err := h.profileSvc.EnsureProfile(r.Context(), *caller)
	if err != nil {
		respondServiceError(w, r, "Ensure profile", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleUpdateMe edits the caller's profile
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username taken"
// @Router /api/users/me [patch]
func (h *UserHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
		return
	}

	if _, err := h.profileSvc.EnsureProfile(r.Context(), *caller); err != nil {
		respondServiceError(w, r, "Ensure profile", err)
		return
	}

	p, err := h.profileSvc.UpdateProfile(r.Context(), caller.Subject, domain.ProfileUpdate{
		Username:        req.Username,
		About:           req.About,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		respondServiceError(w, r, "Update profile", err)
		return
	}

	logger.FromContext(r.Context()).Info("Profile updated via API", "profile_id", caller.Subject)
	respondJSON(w, http.StatusOK, p)
}

// HandleGet returns a public profile with its counters
// @Summary User profile
// @Tags users
// @Produce json
// @Param id path string true "Profile id"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.profileSvc.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, "Get profile", err)
		return
	}

	// Email is private to its owner
	if viewerID(r) != p.ID {
		public := *p
		public.Email = nil
		p = &public
	}
	respondJSON(w, http.StatusOK, p)
}

// HandlePlaylists lists a profile's playlists visible to the caller
// @Summary User playlists
// @Tags users
// @Produce json
// @Param id path string true "Profile id"
// @Success 200 {array} domain.Playlist
// @Router /api/users/{id}/playlists [get]
func (h *UserHandler) HandlePlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, ok := h.playlists.listVisible(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, playlists)
}

// HandleFavorites lists the media in a profile's favorites
// @Summary User favorites
// @Tags users
// @Produce json
// @Param id path string true "Profile id"
// @Success 200 {array} domain.Media
// @Router /api/users/{id}/favorites [get]
func (h *UserHandler) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.playlistSvc.GetFavorites(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, "Get favorites", err)
		return
	}

	media := []domain.Media{}
	if favorites != nil {
		for _, pm := range favorites.PlaylistMedia {
			media = append(media, pm.Media)
		}
	}
	respondJSON(w, http.StatusOK, media)
}

// HandleReviews lists reviews written by a profile
// @Summary User reviews
// @Tags users
// @Produce json
// @Param id path string true "Profile id"
// @Success 200 {array} domain.Review
// @Router /api/users/{id}/reviews [get]
func (h *UserHandler) HandleReviews(w http.ResponseWriter, r *http.Request) {
	h.reviews.listByUser(w, r, chi.URLParam(r, "id"))
}
