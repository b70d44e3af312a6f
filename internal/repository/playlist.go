package repository

import (
	"context"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

// Playlist defines data access for custom playlists
type Playlist interface {
	BeginPlaylistTx(ctx context.Context) (PlaylistTx, error)

	GetPlaylist(ctx context.Context, playlistID int64) (*domain.Playlist, error)
	ListPlaylists(ctx context.Context, profileID string) ([]domain.Playlist, error)
	GetFavoritesPlaylist(ctx context.Context, profileID string) (*domain.Playlist, error)
}

// PlaylistTx extends CatalogTx with playlist-specific transactional operations
type PlaylistTx interface {
	CatalogTx

	CreatePlaylist(ctx context.Context, playlist domain.Playlist) (*domain.Playlist, error)

	// GetPlaylistForUpdate locks the playlist row. Returns domain.ErrPlaylistNotFound if missing.
	GetPlaylistForUpdate(ctx context.Context, playlistID int64) (*domain.Playlist, error)
}
