package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/SceneIt_Go/internal/database/generated"
	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// pgTx implements the transactional repository interfaces over a single pgx.Tx
type pgTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

var (
	_ repository.TrackingTx = (*pgTx)(nil)
	_ repository.PlaylistTx = (*pgTx)(nil)
)

// Commit commits the transaction
func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommit, err)
	}
	return nil
}

// Rollback aborts the transaction
func (t *pgTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// LockProfile creates the profile row if needed and holds a row lock on it
func (t *pgTx) LockProfile(ctx context.Context, profileID string) error {
	if err := t.q.EnsureProfileRow(ctx, profileID); err != nil {
		return dbError(ErrMsgFailedToLockProfile, err)
	}
	if _, err := t.q.LockProfile(ctx, profileID); err != nil {
		return dbError(ErrMsgFailedToLockProfile, err)
	}
	return nil
}

// UpsertMedia inserts a media row, or fills the missing columns of an existing one
func (t *pgTx) UpsertMedia(ctx context.Context, input domain.MediaInput) (*domain.Media, error) {
	row, err := t.q.UpsertMedia(ctx, generated.UpsertMediaParams{
		TmdbID:       int32(input.TmdbID),
		Title:        input.TitleOrDefault(),
		Description:  ptrToText(input.Description),
		PosterUrl:    ptrToText(input.PosterURL),
		ReleaseYear:  ptrToInt4(input.ReleaseYear),
		Producer:     ptrToText(input.Producer),
		DefaultTitle: domain.DefaultMediaTitle,
		HasTitle:     input.Title != "",
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToUpsertMedia, err)
	}
	media := mapMedia(row)
	return &media, nil
}

// AddPlaylistMedia inserts a membership row; false means it already existed
func (t *pgTx) AddPlaylistMedia(ctx context.Context, playlistID int64, tmdbID int) (bool, error) {
	affected, err := t.q.AddPlaylistMedia(ctx, generated.AddPlaylistMediaParams{
		PlaylistID:  playlistID,
		MediaTmdbID: int32(tmdbID),
	})
	if err != nil {
		return false, dbError(ErrMsgFailedToAddMedia, err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := t.q.TouchPlaylist(ctx, playlistID); err != nil {
		return false, dbError(ErrMsgFailedToAddMedia, err)
	}
	return true, nil
}

// RemovePlaylistMedia deletes a membership row; false means there was none
func (t *pgTx) RemovePlaylistMedia(ctx context.Context, playlistID int64, tmdbID int) (bool, error) {
	affected, err := t.q.RemovePlaylistMedia(ctx, generated.RemovePlaylistMediaParams{
		PlaylistID:  playlistID,
		MediaTmdbID: int32(tmdbID),
	})
	if err != nil {
		return false, dbError(ErrMsgFailedToRemoveMedia, err)
	}
	return affected > 0, nil
}

// GetPlaylist loads a playlist and its media inside the transaction
func (t *pgTx) GetPlaylist(ctx context.Context, playlistID int64) (*domain.Playlist, error) {
	return getPlaylist(ctx, t.tx, playlistID)
}

// EnsureFavoritesPlaylist returns the favorites playlist, creating it when absent.
// The partial unique index on playlists(profile_id) WHERE is_favorite makes this race free.
func (t *pgTx) EnsureFavoritesPlaylist(ctx context.Context, profileID string) (*domain.Playlist, error) {
	if err := t.q.EnsureFavoritesPlaylist(ctx, generated.EnsureFavoritesPlaylistParams{
		ProfileID: profileID,
		Name:      domain.FavoritesPlaylistName,
	}); err != nil {
		return nil, dbError(ErrMsgFailedToCreatePlaylist, err)
	}
	return t.FindFavoritesPlaylist(ctx, profileID)
}

// FindFavoritesPlaylist returns the favorites playlist without its media
func (t *pgTx) FindFavoritesPlaylist(ctx context.Context, profileID string) (*domain.Playlist, error) {
	return findPlaylist(ctx, t.tx, `WHERE p.profile_id = $1 AND p.is_favorite`, profileID)
}

// GetUserShowForUpdate locks and returns the watch-state row, or nil when absent
func (t *pgTx) GetUserShowForUpdate(ctx context.Context, profileID string, tmdbID int) (*domain.UserShow, error) {
	row, err := t.q.GetUserShowForUpdate(ctx, generated.GetUserShowForUpdateParams{
		ProfileID:   profileID,
		MediaTmdbID: int32(tmdbID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError(ErrMsgFailedToLoadUserShow, err)
	}
	return &domain.UserShow{
		ProfileID:   row.ProfileID,
		MediaTmdbID: int(row.MediaTmdbID),
		Watched:     row.Watched,
		Listed:      row.Listed,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// SaveUserShow writes both watch-state booleans for the pair
func (t *pgTx) SaveUserShow(ctx context.Context, show domain.UserShow) error {
	if err := t.q.SaveUserShow(ctx, generated.SaveUserShowParams{
		ProfileID:   show.ProfileID,
		MediaTmdbID: int32(show.MediaTmdbID),
		Watched:     show.Watched,
		Listed:      show.Listed,
	}); err != nil {
		return dbError(ErrMsgFailedToSaveUserShow, err)
	}
	return nil
}

// UpsertRating overwrites the score for the pair. A nil review keeps the stored text.
func (t *pgTx) UpsertRating(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
	row, err := t.q.UpsertRating(ctx, generated.UpsertRatingParams{
		ProfileID:   rating.ProfileID,
		MediaTmdbID: int32(rating.MediaTmdbID),
		Rating:      int16(rating.Rating),
		Review:      ptrToText(rating.Review),
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToUpsertRating, err)
	}
	return mapRating(row), nil
}

// RecountProfile recomputes the aggregate counters from the relation tables
func (t *pgTx) RecountProfile(ctx context.Context, profileID string) (*domain.ProfileCounters, error) {
	return recountProfile(ctx, t.q, profileID)
}

// CreatePlaylist inserts a non-favorites playlist
func (t *pgTx) CreatePlaylist(ctx context.Context, playlist domain.Playlist) (*domain.Playlist, error) {
	id, err := t.q.CreatePlaylist(ctx, generated.CreatePlaylistParams{
		ProfileID: playlist.ProfileID,
		Name:      playlist.Name,
		IsPublic:  playlist.IsPublic,
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToCreatePlaylist, err)
	}
	return getPlaylist(ctx, t.tx, id)
}

// GetPlaylistForUpdate locks the playlist row and returns it without media
func (t *pgTx) GetPlaylistForUpdate(ctx context.Context, playlistID int64) (*domain.Playlist, error) {
	return findPlaylist(ctx, t.tx, `WHERE p.id = $1 FOR UPDATE OF p`, playlistID)
}

func recountProfile(ctx context.Context, q *generated.Queries, profileID string) (*domain.ProfileCounters, error) {
	row, err := q.RecountProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, dbError(ErrMsgFailedToRecount, err)
	}
	return &domain.ProfileCounters{
		Watched:     int(row.Watched),
		Rated:       int(row.Rated),
		WantToWatch: int(row.WantToWatch),
	}, nil
}
