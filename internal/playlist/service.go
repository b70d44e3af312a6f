package playlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/event"
	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// Service defines the playlist service interface
type Service interface {
	// CreatePlaylist creates a custom playlist. Favorites are never created here.
	CreatePlaylist(ctx context.Context, ownerID, name string, isPublic bool) (*domain.Playlist, error)

	// AddMedia adds a media item to a playlist owned by the actor
	AddMedia(ctx context.Context, actorID string, playlistID int64, media domain.MediaInput) (*domain.PlaylistMembershipResult, error)

	// RemoveMedia deletes a membership from a playlist owned by the actor.
	// Removing an absent item succeeds.
	RemoveMedia(ctx context.Context, actorID string, playlistID int64, tmdbID int) error

	// ListForProfile returns the profile's playlists visible to the viewer.
	// An empty viewerID is an anonymous viewer.
	ListForProfile(ctx context.Context, profileID, viewerID string) ([]domain.Playlist, error)

	// GetFavorites returns nil when the profile has no favorites playlist
	GetFavorites(ctx context.Context, profileID string) (*domain.Playlist, error)
}

type service struct {
	repo repository.Playlist
	bus  event.Bus
}

// NewService creates a new playlist service. bus may be nil.
func NewService(repo repository.Playlist, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func (s *service) CreatePlaylist(ctx context.Context, ownerID, name string, isPublic bool) (*domain.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxPlaylistNameLength {
		return nil, domain.ErrInvalidPlaylistName
	}

	tx, err := s.repo.BeginPlaylistTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.LockProfile(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockProfile, err)
	}

	created, err := tx.CreatePlaylist(ctx, domain.Playlist{
		ProfileID: ownerID,
		Name:      name,
		IsPublic:  isPublic,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreate, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	logger.FromContext(ctx).Info(LogMsgPlaylistCreated,
		"profile_id", ownerID,
		"playlist_id", created.ID,
		"public", isPublic)
	event.Emit(ctx, s.bus, event.New(event.PlaylistCreated, event.PlaylistPayloadV1{
		PlaylistID: created.ID,
		ProfileID:  ownerID,
		IsPublic:   isPublic,
	}))
	return created, nil
}

func (s *service) AddMedia(ctx context.Context, actorID string, playlistID int64, media domain.MediaInput) (*domain.PlaylistMembershipResult, error) {
	if err := media.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.beginOwned(ctx, actorID, playlistID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.UpsertMedia(ctx, media); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpsertMedia, err)
	}

	added, err := tx.AddPlaylistMedia(ctx, playlistID, media.TmdbID)
	if err != nil {
		return nil, err
	}

	playlist, err := tx.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoad, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	if added {
		logger.FromContext(ctx).Info(LogMsgMediaAdded, "playlist_id", playlistID, "tmdb_id", media.TmdbID)
		event.Emit(ctx, s.bus, event.New(event.PlaylistMediaAdded, event.PlaylistPayloadV1{
			PlaylistID: playlistID,
			ProfileID:  actorID,
			TmdbID:     media.TmdbID,
			IsPublic:   playlist.IsPublic,
		}))
	}
	return &domain.PlaylistMembershipResult{Playlist: playlist, Added: added}, nil
}

func (s *service) RemoveMedia(ctx context.Context, actorID string, playlistID int64, tmdbID int) error {
	if err := domain.ValidateTmdbID(tmdbID); err != nil {
		return err
	}

	tx, err := s.beginOwned(ctx, actorID, playlistID)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	removed, err := tx.RemovePlaylistMedia(ctx, playlistID, tmdbID)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	if removed {
		logger.FromContext(ctx).Info(LogMsgMediaRemoved, "playlist_id", playlistID, "tmdb_id", tmdbID)
	}
	return nil
}

func (s *service) ListForProfile(ctx context.Context, profileID, viewerID string) ([]domain.Playlist, error) {
	all, err := s.repo.ListPlaylists(ctx, profileID)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Playlist, 0, len(all))
	for i := range all {
		if all[i].VisibleTo(viewerID) {
			visible = append(visible, all[i])
		}
	}
	return visible, nil
}

func (s *service) GetFavorites(ctx context.Context, profileID string) (*domain.Playlist, error) {
	fav, err := s.repo.GetFavoritesPlaylist(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return fav, nil
}

// beginOwned opens a transaction and locks the actor before the playlist, the
// same order the tracking service uses. Favorites are edited only through tracking.
func (s *service) beginOwned(ctx context.Context, actorID string, playlistID int64) (repository.PlaylistTx, error) {
	tx, err := s.repo.BeginPlaylistTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}

	if err := tx.LockProfile(ctx, actorID); err != nil {
		repository.SafeRollback(ctx, tx)
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockProfile, err)
	}

	playlist, err := tx.GetPlaylistForUpdate(ctx, playlistID)
	if err != nil {
		repository.SafeRollback(ctx, tx)
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoad, err)
	}

	if playlist.ProfileID != actorID {
		repository.SafeRollback(ctx, tx)
		return nil, domain.ErrForbidden
	}
	if playlist.IsFavorite {
		repository.SafeRollback(ctx, tx)
		return nil, domain.ErrFavoritesNotEditable
	}

	return tx, nil
}
