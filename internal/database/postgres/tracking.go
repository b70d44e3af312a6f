package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SceneIt_Go/internal/database/generated"
	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// TrackingRepository implements repository.Tracking
type TrackingRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

var _ repository.Tracking = (*TrackingRepository)(nil)

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(db *pgxpool.Pool) *TrackingRepository {
	return &TrackingRepository{
		db: db,
		q:  generated.New(db),
	}
}

// BeginTrackingTx starts a transaction for the upsert protocol
func (r *TrackingRepository) BeginTrackingTx(ctx context.Context) (repository.TrackingTx, error) {
	return beginTx(ctx, r.db, r.q)
}

// GetUserShow returns the watch state for a pair with its media, or nil when absent
func (r *TrackingRepository) GetUserShow(ctx context.Context, profileID string, tmdbID int) (*domain.UserShow, error) {
	rows, err := r.queryUserShows(ctx, `AND um.media_tmdb_id = $2`, profileID, tmdbID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// ListUserShows returns the profile's shows, most recently changed first
func (r *TrackingRepository) ListUserShows(ctx context.Context, profileID string, filter domain.ShowFilter) ([]domain.UserShow, error) {
	var clause string
	switch filter {
	case domain.ShowFilterWatched:
		clause = `AND um.watched`
	case domain.ShowFilterListed:
		clause = `AND um.listed`
	default:
		clause = `AND (um.watched OR um.listed)`
	}
	return r.queryUserShows(ctx, clause, profileID)
}

func (r *TrackingRepository) queryUserShows(ctx context.Context, clause string, args ...any) ([]domain.UserShow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT um.profile_id, um.media_tmdb_id, um.watched, um.listed, um.updated_at, `+mediaColumns+`
		FROM user_media um
		JOIN media m ON m.tmdb_id = um.media_tmdb_id
		WHERE um.profile_id = $1 `+clause+`
		ORDER BY um.updated_at DESC, um.media_tmdb_id`, args...)
	if err != nil {
		return nil, dbError(ErrMsgFailedToLoadUserShow, err)
	}
	defer rows.Close()

	shows := []domain.UserShow{}
	for rows.Next() {
		var s domain.UserShow
		m := &domain.Media{}
		if err := rows.Scan(
			&s.ProfileID,
			&s.MediaTmdbID,
			&s.Watched,
			&s.Listed,
			&s.UpdatedAt,
			&m.TmdbID,
			&m.Title,
			&m.Description,
			&m.PosterURL,
			&m.ReleaseYear,
			&m.Producer,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, dbError(ErrMsgFailedToLoadUserShow, err)
		}
		s.Media = m
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToLoadUserShow, err)
	}
	return shows, nil
}

// GetRating returns the profile's rating for the media, or nil when none exists
func (r *TrackingRepository) GetRating(ctx context.Context, profileID string, tmdbID int) (*domain.Rating, error) {
	row, err := r.q.GetRating(ctx, generated.GetRatingParams{
		ProfileID:   profileID,
		MediaTmdbID: int32(tmdbID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError(ErrMsgFailedToLoadRating, err)
	}
	return mapRating(row), nil
}

// GetCounters returns the stored aggregate counters of a profile
func (r *TrackingRepository) GetCounters(ctx context.Context, profileID string) (*domain.ProfileCounters, error) {
	row, err := r.q.GetCounters(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, dbError(ErrMsgFailedToLoadProfile, err)
	}
	return &domain.ProfileCounters{
		Watched:     int(row.Watched),
		Rated:       int(row.Rated),
		WantToWatch: int(row.WantToWatch),
	}, nil
}

// IsFavorite reports whether the media is in the profile's favorites playlist
func (r *TrackingRepository) IsFavorite(ctx context.Context, profileID string, tmdbID int) (bool, error) {
	exists, err := r.q.IsFavorite(ctx, generated.IsFavoriteParams{
		ProfileID:   profileID,
		MediaTmdbID: int32(tmdbID),
	})
	if err != nil {
		return false, dbError(ErrMsgFailedToLoadPlaylist, err)
	}
	return exists, nil
}

// ReconcileCounters finds profiles whose counters drifted from the true counts
// and recounts each one under its row lock.
func (r *TrackingRepository) ReconcileCounters(ctx context.Context) ([]string, error) {
	ids, err := r.q.ListDriftedProfileIDs(ctx)
	if err != nil {
		return nil, dbError(ErrMsgFailedToReconcile, err)
	}

	fixed := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := r.recountLocked(ctx, id); err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				continue
			}
			return fixed, err
		}
		fixed = append(fixed, id)
	}

	if len(fixed) > 0 {
		logger.FromContext(ctx).Info("Reconciled profile counters", "count", len(fixed))
	}
	return fixed, nil
}

func (r *TrackingRepository) recountLocked(ctx context.Context, profileID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dbError(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	if _, err := q.LockProfile(ctx, profileID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProfileNotFound
		}
		return dbError(ErrMsgFailedToLockProfile, err)
	}

	if _, err := recountProfile(ctx, q, profileID); err != nil {
		return fmt.Errorf("recount %s: %w", profileID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommit, err)
	}
	return nil
}
