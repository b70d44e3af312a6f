package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SceneIt_Go/internal/database/generated"
	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// PlaylistRepository implements repository.Playlist
type PlaylistRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

var _ repository.Playlist = (*PlaylistRepository)(nil)

// NewPlaylistRepository creates a new playlist repository
func NewPlaylistRepository(db *pgxpool.Pool) *PlaylistRepository {
	return &PlaylistRepository{
		db: db,
		q:  generated.New(db),
	}
}

// BeginPlaylistTx starts a transaction for playlist mutations
func (r *PlaylistRepository) BeginPlaylistTx(ctx context.Context) (repository.PlaylistTx, error) {
	return beginTx(ctx, r.db, r.q)
}

// GetPlaylist returns a playlist with its media
func (r *PlaylistRepository) GetPlaylist(ctx context.Context, playlistID int64) (*domain.Playlist, error) {
	return getPlaylist(ctx, r.db, playlistID)
}

// GetFavoritesPlaylist returns the profile's favorites playlist with its media
func (r *PlaylistRepository) GetFavoritesPlaylist(ctx context.Context, profileID string) (*domain.Playlist, error) {
	p, err := findPlaylist(ctx, r.db, `WHERE p.profile_id = $1 AND p.is_favorite`, profileID)
	if err != nil {
		return nil, err
	}
	if err := attachPlaylistMedia(ctx, r.db, []*domain.Playlist{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPlaylists returns every playlist of a profile, favorites first, each with its media
func (r *PlaylistRepository) ListPlaylists(ctx context.Context, profileID string) ([]domain.Playlist, error) {
	rows, err := r.q.ListPlaylists(ctx, profileID)
	if err != nil {
		return nil, dbError(ErrMsgFailedToLoadPlaylist, err)
	}

	playlists := make([]domain.Playlist, len(rows))
	ptrs := make([]*domain.Playlist, len(rows))
	for i, row := range rows {
		playlists[i] = domain.Playlist{
			ID:            row.ID,
			ProfileID:     row.ProfileID,
			OwnerUsername: textToPtr(row.Username),
			Name:          row.Name,
			IsFavorite:    row.IsFavorite,
			IsPublic:      row.IsPublic,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
			PlaylistMedia: []domain.PlaylistMedia{},
		}
		ptrs[i] = &playlists[i]
	}
	if err := attachPlaylistMedia(ctx, r.db, ptrs); err != nil {
		return nil, err
	}
	return playlists, nil
}

// getPlaylist loads one playlist by id, with media
func getPlaylist(ctx context.Context, db generated.DBTX, playlistID int64) (*domain.Playlist, error) {
	p, err := findPlaylist(ctx, db, `WHERE p.id = $1`, playlistID)
	if err != nil {
		return nil, err
	}
	if err := attachPlaylistMedia(ctx, db, []*domain.Playlist{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// findPlaylist loads one playlist header matching the where clause
func findPlaylist(ctx context.Context, db generated.DBTX, where string, args ...any) (*domain.Playlist, error) {
	row := db.QueryRow(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists p
		JOIN profiles pr ON pr.id = p.profile_id
		`+where, args...)

	p, err := scanPlaylist(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, dbError(ErrMsgFailedToLoadPlaylist, err)
	}
	return p, nil
}

func scanPlaylist(row pgx.Row) (*domain.Playlist, error) {
	p := domain.Playlist{PlaylistMedia: []domain.PlaylistMedia{}}
	err := row.Scan(
		&p.ID,
		&p.ProfileID,
		&p.OwnerUsername,
		&p.Name,
		&p.IsFavorite,
		&p.IsPublic,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// attachPlaylistMedia loads the media of all given playlists in one query
func attachPlaylistMedia(ctx context.Context, db generated.DBTX, playlists []*domain.Playlist) error {
	if len(playlists) == 0 {
		return nil
	}

	ids := make([]int64, len(playlists))
	byID := make(map[int64]*domain.Playlist, len(playlists))
	for i, p := range playlists {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	rows, err := generated.New(db).ListPlaylistMedia(ctx, ids)
	if err != nil {
		return dbError(ErrMsgFailedToLoadMedia, err)
	}

	for _, row := range rows {
		media := mapMedia(generated.Medium{
			TmdbID:      row.TmdbID,
			Title:       row.Title,
			Description: row.Description,
			PosterUrl:   row.PosterUrl,
			ReleaseYear: row.ReleaseYear,
			Producer:    row.Producer,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
		if p, ok := byID[row.PlaylistID]; ok {
			p.PlaylistMedia = append(p.PlaylistMedia, domain.PlaylistMedia{
				PlaylistID:  row.PlaylistID,
				MediaTmdbID: media.TmdbID,
				AddedAt:     row.AddedAt,
				Media:       media,
			})
		}
	}
	return nil
}
