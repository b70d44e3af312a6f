package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/playlist"
	"github.com/osse101/SceneIt_Go/internal/tracking"
)

// CreatePlaylistRequest is the body of POST /playlists.
// UserID and ProfileID are accepted for older clients and must match the caller.
type CreatePlaylistRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	IsPublic  *bool  `json:"isPublic,omitempty"`
	UserID    string `json:"userId,omitempty"`
	ProfileID string `json:"profileId,omitempty"`
}

// AddFavoriteRequest is the body of POST /playlists/favorites
type AddFavoriteRequest struct {
	TmdbID    int    `json:"tmdbId" validate:"gt=0,lte=2147483647"`
	ProfileID string `json:"profileId,omitempty"`
	MediaFields
}

// AddPlaylistMediaRequest is the body of POST /playlists/{playlistId}/media
type AddPlaylistMediaRequest struct {
	TmdbID int `json:"tmdbId" validate:"gt=0,lte=2147483647"`
	MediaFields
}

// FavoriteCheckResponse answers GET /playlists/favorites/check
type FavoriteCheckResponse struct {
	TmdbID     int  `json:"tmdbId"`
	IsFavorite bool `json:"isFavorite"`
}

// FavoriteRemovedResponse answers DELETE /playlists/favorites/{tmdbId}
type FavoriteRemovedResponse struct {
	Message string `json:"message"`
	Removed bool   `json:"removed"`
}

// NoFavoritesResponse is returned when a profile has no favorites playlist yet
type NoFavoritesResponse struct {
	Playlist *domain.Playlist `json:"playlist"`
	Message  string           `json:"message"`
}

// PlaylistsResponse wraps a playlist list
type PlaylistsResponse struct {
	Playlists []domain.Playlist `json:"playlists"`
}

// PlaylistHandler handles playlist and favorites HTTP requests
type PlaylistHandler struct {
	playlistSvc playlist.Service
	trackingSvc tracking.Service
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(playlistSvc playlist.Service, trackingSvc tracking.Service) *PlaylistHandler {
	return &PlaylistHandler{
		playlistSvc: playlistSvc,
		trackingSvc: trackingSvc,
	}
}

// HandleCreate creates a custom playlist for the caller
// @Summary Create playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePlaylistRequest true "Playlist"
// @Success 201 {object} domain.Playlist
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /playlists [post]
func (h *PlaylistHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreatePlaylistRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create playlist"); err != nil {
		return
	}
	if !checkClaimedID(w, r, caller.Subject, req.UserID, req.ProfileID) {
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	created, err := h.playlistSvc.CreatePlaylist(r.Context(), caller.Subject, req.Name, isPublic)
	if err != nil {
		respondServiceError(w, r, "Create playlist", err)
		return
	}

	logger.FromContext(r.Context()).Info("Playlist created", "playlist_id", created.ID, "profile_id", caller.Subject)
	respondJSON(w, http.StatusCreated, created)
}

// HandleAddFavorite adds a media item to the caller's favorites
// @Summary Add to favorites
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "Media"
// @Success 201 {object} domain.Playlist
// @Success 200 {object} SuccessResponse "Already a favorite"
// @Failure 400 {object} ErrorResponse
// @Router /playlists/favorites [post]
func (h *PlaylistHandler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req AddFavoriteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add favorite"); err != nil {
		return
	}
	if !checkClaimedID(w, r, caller.Subject, req.ProfileID) {
		return
	}

	result, err := h.trackingSvc.AddFavorite(r.Context(), caller.Subject, req.toInput(req.TmdbID))
	if err != nil {
		respondServiceError(w, r, "Add favorite", err)
		return
	}

	if !result.Added {
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMediaAlreadyInFavorites})
		return
	}
	respondJSON(w, http.StatusCreated, result.Playlist)
}

// HandleRemoveFavorite removes a media item from the caller's favorites
// @Summary Remove from favorites
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param tmdbId path int true "TMDB id"
// @Success 200 {object} FavoriteRemovedResponse
// @Router /playlists/favorites/{tmdbId} [delete]
func (h *PlaylistHandler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	tmdbID, ok := pathInt(w, r, "tmdbId")
	if !ok {
		return
	}

	removed, err := h.trackingSvc.RemoveFavorite(r.Context(), caller.Subject, tmdbID)
	if err != nil {
		respondServiceError(w, r, "Remove favorite", err)
		return
	}

	msg := MsgFavoriteRemoved
	if !removed {
		msg = MsgFavoriteNotPresent
	}
	respondJSON(w, http.StatusOK, FavoriteRemovedResponse{Message: msg, Removed: removed})
}

// HandleCheckFavorite reports whether a media item is in the caller's favorites
// @Summary Check favorite
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param tmdbId query int true "TMDB id"
// @Success 200 {object} FavoriteCheckResponse
// @Router /playlists/favorites/check [get]
func (h *PlaylistHandler) HandleCheckFavorite(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	raw, ok := GetQueryParam(r, w, "tmdbId")
	if !ok {
		return
	}
	tmdbID, ok := parsePositiveInt(w, raw, "tmdbId")
	if !ok {
		return
	}

	isFavorite, err := h.trackingSvc.IsFavorite(r.Context(), caller.Subject, tmdbID)
	if err != nil {
		respondServiceError(w, r, "Check favorite", err)
		return
	}
	respondJSON(w, http.StatusOK, FavoriteCheckResponse{TmdbID: tmdbID, IsFavorite: isFavorite})
}

// HandleGetFavorites returns a profile's favorites playlist
// @Summary Favorites playlist
// @Tags playlists
// @Produce json
// @Param profileId path string true "Profile id"
// @Success 200 {object} domain.Playlist
// @Router /playlists/favorites/{profileId} [get]
func (h *PlaylistHandler) HandleGetFavorites(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileId")

	favorites, err := h.playlistSvc.GetFavorites(r.Context(), profileID)
	if err != nil {
		respondServiceError(w, r, "Get favorites", err)
		return
	}
	if favorites == nil {
		respondJSON(w, http.StatusOK, NoFavoritesResponse{Message: MsgNoFavoritesPlaylist})
		return
	}
	respondJSON(w, http.StatusOK, favorites)
}

// HandleAddMedia adds a media item to one of the caller's playlists
// @Summary Add media to playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlistId path int true "Playlist id"
// @Param request body AddPlaylistMediaRequest true "Media"
// @Success 201 {object} domain.Playlist
// @Success 200 {object} SuccessResponse "Already in playlist"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /playlists/{playlistId}/media [post]
func (h *PlaylistHandler) HandleAddMedia(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	playlistID, ok := pathInt64(w, r, "playlistId")
	if !ok {
		return
	}

	var req AddPlaylistMediaRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add playlist media"); err != nil {
		return
	}

	result, err := h.playlistSvc.AddMedia(r.Context(), caller.Subject, playlistID, req.toInput(req.TmdbID))
	if err != nil {
		respondServiceError(w, r, "Add playlist media", err)
		return
	}

	if !result.Added {
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMediaAlreadyInPlaylist})
		return
	}
	respondJSON(w, http.StatusCreated, result.Playlist)
}

// HandleRemoveMedia removes a media item from one of the caller's playlists
// @Summary Remove media from playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param playlistId path int true "Playlist id"
// @Param tmdbId path int true "TMDB id"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /playlists/{playlistId}/media/{tmdbId} [delete]
func (h *PlaylistHandler) HandleRemoveMedia(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	playlistID, ok := pathInt64(w, r, "playlistId")
	if !ok {
		return
	}
	tmdbID, ok := pathInt(w, r, "tmdbId")
	if !ok {
		return
	}

	if err := h.playlistSvc.RemoveMedia(r.Context(), caller.Subject, playlistID, tmdbID); err != nil {
		respondServiceError(w, r, "Remove playlist media", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMediaRemoved})
}

// HandleListForProfile lists a profile's playlists visible to the caller
// @Summary Profile playlists
// @Tags playlists
// @Produce json
// @Param profileId path string true "Profile id"
// @Success 200 {object} PlaylistsResponse
// @Router /playlists/user/{profileId} [get]
func (h *PlaylistHandler) HandleListForProfile(w http.ResponseWriter, r *http.Request) {
	playlists, ok := h.listVisible(w, r, chi.URLParam(r, "profileId"))
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, PlaylistsResponse{Playlists: playlists})
}

func (h *PlaylistHandler) listVisible(w http.ResponseWriter, r *http.Request, profileID string) ([]domain.Playlist, bool) {
	playlists, err := h.playlistSvc.ListForProfile(r.Context(), profileID, viewerID(r))
	if err != nil {
		respondServiceError(w, r, "List playlists", err)
		return nil, false
	}
	if playlists == nil {
		playlists = []domain.Playlist{}
	}
	return playlists, true
}
