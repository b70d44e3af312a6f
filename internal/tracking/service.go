package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/event"
	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// CacheInvalidator drops cached profiles whose counters changed
type CacheInvalidator interface {
	InvalidateProfile(profileID string)
}

// Service defines the tracking service interface
type Service interface {
	// AddFavorite puts the media into the profile's favorites playlist, creating
	// the playlist and the media cache row when missing.
	AddFavorite(ctx context.Context, profileID string, media domain.MediaInput) (*domain.PlaylistMembershipResult, error)

	// RemoveFavorite reports whether a membership was deleted
	RemoveFavorite(ctx context.Context, profileID string, tmdbID int) (bool, error)

	IsFavorite(ctx context.Context, profileID string, tmdbID int) (bool, error)

	// SetWatched sets the watched flag. A nil desired state toggles it.
	SetWatched(ctx context.Context, profileID string, media domain.MediaInput, desired *bool) (*domain.ShowState, error)

	// SetListed sets the want-to-watch flag. A nil desired state toggles it.
	SetListed(ctx context.Context, profileID string, media domain.MediaInput, desired *bool) (*domain.ShowState, error)

	GetShowState(ctx context.Context, profileID string, tmdbID int) (*domain.ShowState, error)
	ListShows(ctx context.Context, profileID string, filter domain.ShowFilter) ([]domain.UserShow, error)

	// SaveRating overwrites the profile's score for the media
	SaveRating(ctx context.Context, profileID string, input domain.RatingInput) (*domain.Rating, error)

	// GetRating returns nil when the profile has not rated the media
	GetRating(ctx context.Context, profileID string, tmdbID int) (*domain.Rating, error)

	// ReconcileCounters repairs drifted profile counters and returns how many were fixed
	ReconcileCounters(ctx context.Context) (int, error)
}

type service struct {
	repo  repository.Tracking
	cache CacheInvalidator
	bus   event.Bus
}

// NewService creates a new tracking service. cache and bus may be nil.
func NewService(repo repository.Tracking, cache CacheInvalidator, bus event.Bus) Service {
	return &service{
		repo:  repo,
		cache: cache,
		bus:   bus,
	}
}

// AddFavorite runs the favorites upsert protocol in one transaction
func (s *service) AddFavorite(ctx context.Context, profileID string, media domain.MediaInput) (*domain.PlaylistMembershipResult, error) {
	if err := media.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.beginLocked(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.UpsertMedia(ctx, media); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpsertMedia, err)
	}

	fav, err := tx.EnsureFavoritesPlaylist(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadFavorite, err)
	}

	added, err := tx.AddPlaylistMedia(ctx, fav.ID, media.TmdbID)
	if err != nil {
		return nil, err
	}

	playlist, err := tx.GetPlaylist(ctx, fav.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	if added {
		logger.FromContext(ctx).Info(LogMsgFavoriteAdded, "profile_id", profileID, "tmdb_id", media.TmdbID)
		event.Emit(ctx, s.bus, event.NewFavoriteEvent(true, profileID, media.TmdbID))
	}
	return &domain.PlaylistMembershipResult{Playlist: playlist, Added: added}, nil
}

// RemoveFavorite deletes the membership if present. A profile without a
// favorites playlist has nothing to remove.
func (s *service) RemoveFavorite(ctx context.Context, profileID string, tmdbID int) (bool, error) {
	if err := domain.ValidateTmdbID(tmdbID); err != nil {
		return false, err
	}

	tx, err := s.beginLocked(ctx, profileID)
	if err != nil {
		return false, err
	}
	defer repository.SafeRollback(ctx, tx)

	fav, err := tx.FindFavoritesPlaylist(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrContextFailedToLoadFavorite, err)
	}

	removed, err := tx.RemovePlaylistMedia(ctx, fav.ID, tmdbID)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	if removed {
		logger.FromContext(ctx).Info(LogMsgFavoriteRemoved, "profile_id", profileID, "tmdb_id", tmdbID)
		event.Emit(ctx, s.bus, event.NewFavoriteEvent(false, profileID, tmdbID))
	}
	return removed, nil
}

func (s *service) IsFavorite(ctx context.Context, profileID string, tmdbID int) (bool, error) {
	if err := domain.ValidateTmdbID(tmdbID); err != nil {
		return false, err
	}
	return s.repo.IsFavorite(ctx, profileID, tmdbID)
}

func (s *service) SetWatched(ctx context.Context, profileID string, media domain.MediaInput, desired *bool) (*domain.ShowState, error) {
	return s.setState(ctx, profileID, media, fieldWatched, desired)
}

func (s *service) SetListed(ctx context.Context, profileID string, media domain.MediaInput, desired *bool) (*domain.ShowState, error) {
	return s.setState(ctx, profileID, media, fieldListed, desired)
}

// setState applies a toggle or explicit value to one watch-state flag.
// Equal desired and current state commits nothing but the media upsert.
func (s *service) setState(ctx context.Context, profileID string, media domain.MediaInput, field stateField, desired *bool) (*domain.ShowState, error) {
	if err := media.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.beginLocked(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.UpsertMedia(ctx, media); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpsertMedia, err)
	}

	show, err := tx.GetUserShowForUpdate(ctx, profileID, media.TmdbID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateState, err)
	}
	if show == nil {
		show = &domain.UserShow{ProfileID: profileID, MediaTmdbID: media.TmdbID}
	}

	current := show.Watched
	if field == fieldListed {
		current = show.Listed
	}
	next := !current
	if desired != nil {
		next = *desired
	}

	log := logger.FromContext(ctx)
	if next == current {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
		}
		counters, err := s.repo.GetCounters(ctx, profileID)
		if err != nil {
			return nil, err
		}
		log.Debug(LogMsgShowStateUnchanged, "profile_id", profileID, "tmdb_id", media.TmdbID, "field", field)
		return showState(show, counters), nil
	}

	if field == fieldWatched {
		show.Watched = next
	} else {
		show.Listed = next
	}
	if err := tx.SaveUserShow(ctx, *show); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateState, err)
	}

	counters, err := tx.RecountProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecount, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}
	s.invalidate(profileID)

	log.Info(LogMsgShowStateChanged,
		"profile_id", profileID,
		"tmdb_id", media.TmdbID,
		"field", field,
		"value", next)
	event.Emit(ctx, s.bus, event.NewShowStateEvent(profileID, media.TmdbID, string(field), next))
	return showState(show, counters), nil
}

// GetShowState returns the caller's state for one media item. A pair with no
// stored row is reported as unwatched and unlisted.
func (s *service) GetShowState(ctx context.Context, profileID string, tmdbID int) (*domain.ShowState, error) {
	if err := domain.ValidateTmdbID(tmdbID); err != nil {
		return nil, err
	}

	show, err := s.repo.GetUserShow(ctx, profileID, tmdbID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		show = &domain.UserShow{ProfileID: profileID, MediaTmdbID: tmdbID}
	}

	rating, err := s.repo.GetRating(ctx, profileID, tmdbID)
	if err != nil {
		return nil, err
	}

	counters, err := s.repo.GetCounters(ctx, profileID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		counters = &domain.ProfileCounters{}
	}

	state := showState(show, counters)
	state.Rating = rating
	return state, nil
}

func (s *service) ListShows(ctx context.Context, profileID string, filter domain.ShowFilter) ([]domain.UserShow, error) {
	return s.repo.ListUserShows(ctx, profileID, filter)
}

// SaveRating upserts the rating and recounts the profile in one transaction
func (s *service) SaveRating(ctx context.Context, profileID string, input domain.RatingInput) (*domain.Rating, error) {
	if err := domain.ValidateRating(input.Rating); err != nil {
		return nil, err
	}
	if err := input.Media.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.beginLocked(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.UpsertMedia(ctx, input.Media); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpsertMedia, err)
	}

	rating, err := tx.UpsertRating(ctx, domain.Rating{
		ProfileID:   profileID,
		MediaTmdbID: input.Media.TmdbID,
		Rating:      input.Rating,
		Review:      input.Review,
	})
	if err != nil {
		return nil, err
	}

	if _, err := tx.RecountProfile(ctx, profileID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecount, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}
	s.invalidate(profileID)

	logger.FromContext(ctx).Info(LogMsgRatingSaved,
		"profile_id", profileID,
		"tmdb_id", input.Media.TmdbID,
		"rating", input.Rating)
	event.Emit(ctx, s.bus, event.New(event.RatingSaved, event.RatingPayloadV1{
		ProfileID: profileID,
		TmdbID:    input.Media.TmdbID,
		Rating:    input.Rating,
	}))
	return rating, nil
}

func (s *service) GetRating(ctx context.Context, profileID string, tmdbID int) (*domain.Rating, error) {
	if err := domain.ValidateTmdbID(tmdbID); err != nil {
		return nil, err
	}
	return s.repo.GetRating(ctx, profileID, tmdbID)
}

func (s *service) ReconcileCounters(ctx context.Context) (int, error) {
	fixed, err := s.repo.ReconcileCounters(ctx)
	for _, id := range fixed {
		s.invalidate(id)
	}
	if err != nil {
		return len(fixed), err
	}

	if len(fixed) > 0 {
		logger.FromContext(ctx).Warn(LogMsgCountersReconciled, "count", len(fixed), "profile_ids", fixed)
		event.Emit(ctx, s.bus, event.New(event.CountersReconciled, event.CountersReconciledPayloadV1{ProfilesFixed: len(fixed)}))
	}
	return len(fixed), nil
}

// beginLocked opens a transaction and takes the profile row lock
func (s *service) beginLocked(ctx context.Context, profileID string) (repository.TrackingTx, error) {
	tx, err := s.repo.BeginTrackingTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	if err := tx.LockProfile(ctx, profileID); err != nil {
		repository.SafeRollback(ctx, tx)
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockProfile, err)
	}
	return tx, nil
}

func (s *service) invalidate(profileID string) {
	if s.cache != nil {
		s.cache.InvalidateProfile(profileID)
	}
}

func showState(show *domain.UserShow, counters *domain.ProfileCounters) *domain.ShowState {
	state := &domain.ShowState{
		TmdbID:  show.MediaTmdbID,
		Watched: show.Watched,
		Listed:  show.Listed,
	}
	if counters != nil {
		state.Counters = *counters
	}
	return state
}
