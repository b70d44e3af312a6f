package repository

import (
	"context"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

// CatalogTx holds the write steps shared by every tracking mutation.
// Implementations run them inside one database transaction.
type CatalogTx interface {
	Tx

	// LockProfile creates the profile row if missing and locks it for the
	// rest of the transaction, serializing mutations by the same user.
	LockProfile(ctx context.Context, profileID string) error

	// UpsertMedia inserts the media row or fills its missing columns.
	UpsertMedia(ctx context.Context, media domain.MediaInput) (*domain.Media, error)

	// AddPlaylistMedia inserts the membership. Returns false if it already existed.
	AddPlaylistMedia(ctx context.Context, playlistID int64, tmdbID int) (bool, error)

	// RemovePlaylistMedia deletes the membership. Returns false if nothing was deleted.
	RemovePlaylistMedia(ctx context.Context, playlistID int64, tmdbID int) (bool, error)

	// GetPlaylist returns the playlist with its media
	GetPlaylist(ctx context.Context, playlistID int64) (*domain.Playlist, error)
}
