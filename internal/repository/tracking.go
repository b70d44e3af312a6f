package repository

import (
	"context"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

// Tracking defines data access for watch state, favorites and ratings
type Tracking interface {
	BeginTrackingTx(ctx context.Context) (TrackingTx, error)

	GetUserShow(ctx context.Context, profileID string, tmdbID int) (*domain.UserShow, error)
	ListUserShows(ctx context.Context, profileID string, filter domain.ShowFilter) ([]domain.UserShow, error)
	GetRating(ctx context.Context, profileID string, tmdbID int) (*domain.Rating, error)
	GetCounters(ctx context.Context, profileID string) (*domain.ProfileCounters, error)
	IsFavorite(ctx context.Context, profileID string, tmdbID int) (bool, error)

	// ReconcileCounters rewrites every profile whose counters differ from
	// the true counts and returns the ids of the profiles it fixed.
	ReconcileCounters(ctx context.Context) ([]string, error)
}

// TrackingTx extends CatalogTx with tracking-specific transactional operations
type TrackingTx interface {
	CatalogTx

	// EnsureFavoritesPlaylist returns the profile's favorites playlist, creating it if absent
	EnsureFavoritesPlaylist(ctx context.Context, profileID string) (*domain.Playlist, error)

	// FindFavoritesPlaylist returns domain.ErrPlaylistNotFound when the profile has none
	FindFavoritesPlaylist(ctx context.Context, profileID string) (*domain.Playlist, error)

	// GetUserShowForUpdate returns nil when no row exists
	GetUserShowForUpdate(ctx context.Context, profileID string, tmdbID int) (*domain.UserShow, error)
	SaveUserShow(ctx context.Context, show domain.UserShow) error

	UpsertRating(ctx context.Context, rating domain.Rating) (*domain.Rating, error)

	// RecountProfile recomputes and stores the profile's aggregate counters
	RecountProfile(ctx context.Context, profileID string) (*domain.ProfileCounters, error)
}
