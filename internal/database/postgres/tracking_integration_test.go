package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// addFavorite runs the favorites protocol the way the tracking service does
func addFavorite(ctx context.Context, repo *TrackingRepository, profileID string, media domain.MediaInput) (bool, error) {
	tx, err := repo.BeginTrackingTx(ctx)
	if err != nil {
		return false, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.LockProfile(ctx, profileID); err != nil {
		return false, err
	}
	if _, err := tx.UpsertMedia(ctx, media); err != nil {
		return false, err
	}
	fav, err := tx.EnsureFavoritesPlaylist(ctx, profileID)
	if err != nil {
		return false, err
	}
	added, err := tx.AddPlaylistMedia(ctx, fav.ID, media.TmdbID)
	if err != nil {
		return false, err
	}
	return added, tx.Commit(ctx)
}

func TestTrackingRepository_FavoritesConcurrent(t *testing.T) {
	ctx := setupTest(t)
	repo := NewTrackingRepository(testPool)
	playlists := NewPlaylistRepository(testPool)

	const workers = 10
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := addFavorite(ctx, repo, "user-1", domain.MediaInput{TmdbID: 42, Title: "Dark"})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, added, "exactly one request should insert the membership")

	all, err := playlists.ListPlaylists(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsFavorite)
	assert.Equal(t, domain.FavoritesPlaylistName, all[0].Name)
	require.Len(t, all[0].PlaylistMedia, 1)
	assert.Equal(t, "Dark", all[0].PlaylistMedia[0].Media.Title)

	fav, err := repo.IsFavorite(ctx, "user-1", 42)
	require.NoError(t, err)
	assert.True(t, fav)
}

func TestTrackingRepository_UpsertMediaFillsStub(t *testing.T) {
	ctx := setupTest(t)
	repo := NewTrackingRepository(testPool)

	_, err := addFavorite(ctx, repo, "user-1", domain.MediaInput{TmdbID: 7})
	require.NoError(t, err)

	tx, err := repo.BeginTrackingTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	media, err := tx.UpsertMedia(ctx, domain.MediaInput{
		TmdbID:    7,
		Title:     "Severance",
		PosterURL: strPtr("/poster.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Severance", media.Title)
	require.NotNil(t, media.PosterURL)
	assert.Equal(t, "/poster.jpg", *media.PosterURL)

	// A later caller can't overwrite a real title
	media, err = tx.UpsertMedia(ctx, domain.MediaInput{TmdbID: 7, Title: "Other"})
	require.NoError(t, err)
	assert.Equal(t, "Severance", media.Title)
	require.NoError(t, tx.Commit(ctx))
}

func TestTrackingRepository_WatchStateAndCounters(t *testing.T) {
	ctx := setupTest(t)
	repo := NewTrackingRepository(testPool)

	tx, err := repo.BeginTrackingTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.LockProfile(ctx, "user-1"))
	_, err = tx.UpsertMedia(ctx, domain.MediaInput{TmdbID: 1, Title: "A"})
	require.NoError(t, err)
	_, err = tx.UpsertMedia(ctx, domain.MediaInput{TmdbID: 2, Title: "B"})
	require.NoError(t, err)

	existing, err := tx.GetUserShowForUpdate(ctx, "user-1", 1)
	require.NoError(t, err)
	assert.Nil(t, existing)

	require.NoError(t, tx.SaveUserShow(ctx, domain.UserShow{ProfileID: "user-1", MediaTmdbID: 1, Watched: true, Listed: true}))
	require.NoError(t, tx.SaveUserShow(ctx, domain.UserShow{ProfileID: "user-1", MediaTmdbID: 2, Listed: true}))
	_, err = tx.UpsertRating(ctx, domain.Rating{ProfileID: "user-1", MediaTmdbID: 1, Rating: 4, Review: strPtr("good")})
	require.NoError(t, err)

	counters, err := tx.RecountProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileCounters{Watched: 1, Rated: 1, WantToWatch: 2}, *counters)
	require.NoError(t, tx.Commit(ctx))

	show, err := repo.GetUserShow(ctx, "user-1", 1)
	require.NoError(t, err)
	require.NotNil(t, show)
	assert.True(t, show.Watched)
	assert.True(t, show.Listed)
	assert.Equal(t, "A", show.Media.Title)

	watched, err := repo.ListUserShows(ctx, "user-1", domain.ShowFilterWatched)
	require.NoError(t, err)
	assert.Len(t, watched, 1)

	listed, err := repo.ListUserShows(ctx, "user-1", domain.ShowFilterListed)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	stored, err := repo.GetCounters(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, *counters, *stored)
}

func TestTrackingRepository_UpsertRatingKeepsReview(t *testing.T) {
	ctx := setupTest(t)
	repo := NewTrackingRepository(testPool)

	save := func(rating int, review *string) *domain.Rating {
		tx, err := repo.BeginTrackingTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)
		require.NoError(t, tx.LockProfile(ctx, "user-1"))
		_, err = tx.UpsertMedia(ctx, domain.MediaInput{TmdbID: 5, Title: "E"})
		require.NoError(t, err)
		saved, err := tx.UpsertRating(ctx, domain.Rating{ProfileID: "user-1", MediaTmdbID: 5, Rating: rating, Review: review})
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))
		return saved
	}

	save(3, strPtr("fine"))
	updated := save(5, nil)
	assert.Equal(t, 5, updated.Rating)
	require.NotNil(t, updated.Review)
	assert.Equal(t, "fine", *updated.Review)

	got, err := repo.GetRating(ctx, "user-1", 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.Rating)

	none, err := repo.GetRating(ctx, "user-1", 999)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestTrackingRepository_ReconcileCounters(t *testing.T) {
	ctx := setupTest(t)
	repo := NewTrackingRepository(testPool)

	tx, err := repo.BeginTrackingTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.LockProfile(ctx, "user-1"))
	_, err = tx.UpsertMedia(ctx, domain.MediaInput{TmdbID: 1, Title: "A"})
	require.NoError(t, err)
	require.NoError(t, tx.SaveUserShow(ctx, domain.UserShow{ProfileID: "user-1", MediaTmdbID: 1, Watched: true}))
	_, err = tx.RecountProfile(ctx, "user-1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	createProfile(t, ctx, "user-2", "")

	// Corrupt the stored counters behind the repository's back
	_, err = testPool.Exec(ctx, `UPDATE profiles SET watched = 9, rated = 3 WHERE id = 'user-1'`)
	require.NoError(t, err)

	fixed, err := repo.ReconcileCounters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, fixed)

	counters, err := repo.GetCounters(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileCounters{Watched: 1}, *counters)

	fixed, err = repo.ReconcileCounters(ctx)
	require.NoError(t, err)
	assert.Empty(t, fixed)
}

func TestTrackingRepository_GetCountersMissingProfile(t *testing.T) {
	ctx := setupTest(t)
	repo := NewTrackingRepository(testPool)

	_, err := repo.GetCounters(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
