package playlist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/mocks"
)

func TestCreatePlaylist(t *testing.T) {
	tests := []struct {
		name       string
		inputName  string
		setupMocks func(*mocks.MockPlaylistRepository, *mocks.MockPlaylistTx)
		wantErr    error
	}{
		{
			name:      "Success",
			inputName: "  Weekend  ",
			setupMocks: func(repo *mocks.MockPlaylistRepository, tx *mocks.MockPlaylistTx) {
				repo.On("BeginPlaylistTx", mock.Anything).Return(tx, nil)
				tx.On("LockProfile", mock.Anything, "u1").Return(nil)
				tx.On("CreatePlaylist", mock.Anything, domain.Playlist{ProfileID: "u1", Name: "Weekend", IsPublic: true}).
					Return(&domain.Playlist{ID: 5, ProfileID: "u1", Name: "Weekend", IsPublic: true}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
				tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))
			},
		},
		{
			name:       "Empty Name",
			inputName:  "   ",
			setupMocks: func(*mocks.MockPlaylistRepository, *mocks.MockPlaylistTx) {},
			wantErr:    domain.ErrInvalidPlaylistName,
		},
		{
			name:       "Name Too Long",
			inputName:  strings.Repeat("x", domain.MaxPlaylistNameLength+1),
			setupMocks: func(*mocks.MockPlaylistRepository, *mocks.MockPlaylistTx) {},
			wantErr:    domain.ErrInvalidPlaylistName,
		},
		{
			name:      "Insert Failure Rolls Back",
			inputName: "Weekend",
			setupMocks: func(repo *mocks.MockPlaylistRepository, tx *mocks.MockPlaylistTx) {
				repo.On("BeginPlaylistTx", mock.Anything).Return(tx, nil)
				tx.On("LockProfile", mock.Anything, "u1").Return(nil)
				tx.On("CreatePlaylist", mock.Anything, mock.Anything).Return(nil, domain.ErrDatabaseError)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantErr: domain.ErrDatabaseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPlaylistRepository(t)
			tx := mocks.NewMockPlaylistTx(t)
			tt.setupMocks(repo, tx)

			svc := NewService(repo, nil)
			p, err := svc.CreatePlaylist(context.Background(), "u1", tt.inputName, true)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Weekend", p.Name)
			assert.False(t, p.IsFavorite)
		})
	}
}

func TestAddMedia(t *testing.T) {
	media := domain.MediaInput{TmdbID: 100, Title: "Ozark"}
	owned := &domain.Playlist{ID: 5, ProfileID: "u1", Name: "Weekend", IsPublic: true}

	tests := []struct {
		name       string
		actor      string
		setupMocks func(*mocks.MockPlaylistRepository, *mocks.MockPlaylistTx)
		wantErr    error
		wantAdded  bool
	}{
		{
			name:  "Added",
			actor: "u1",
			setupMocks: func(repo *mocks.MockPlaylistRepository, tx *mocks.MockPlaylistTx) {
				repo.On("BeginPlaylistTx", mock.Anything).Return(tx, nil)
				tx.On("LockProfile", mock.Anything, "u1").Return(nil)
				tx.On("GetPlaylistForUpdate", mock.Anything, int64(5)).Return(owned, nil)
				tx.On("UpsertMedia", mock.Anything, media).Return(&domain.Media{TmdbID: 100, Title: "Ozark"}, nil)
				tx.On("AddPlaylistMedia", mock.Anything, int64(5), 100).Return(true, nil)
				tx.On("GetPlaylist", mock.Anything, int64(5)).Return(owned, nil)
				tx.On("Commit", mock.Anything).Return(nil)
				tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))
			},
			wantAdded: true,
		},
		{
			name:  "Already Present",
			actor: "u1",
			setupMocks: func(repo *mocks.MockPlaylistRepository, tx *mocks.MockPlaylistTx) {
				repo.On("BeginPlaylistTx", mock.Anything).Return(tx, nil)
				tx.On("LockProfile", mock.Anything, "u1").Return(nil)
				tx.On("GetPlaylistForUpdate", mock.Anything, int64(5)).Return(owned, nil)
				tx.On("UpsertMedia", mock.Anything, media).Return(&domain.Media{TmdbID: 100}, nil)
				tx.On("AddPlaylistMedia", mock.Anything, int64(5), 100).Return(false, nil)
				tx.On("GetPlaylist", mock.Anything, int64(5)).Return(owned, nil)
				tx.On("Commit", mock.Anything).Return(nil)
				tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))
			},
			wantAdded: false,
		},
		{
			name:  "Not Owner",
			actor: "intruder",
			setupMocks: func(repo *mocks.MockPlaylistRepository, tx *mocks.MockPlaylistTx) {
				repo.On("BeginPlaylistTx", mock.Anything).Return(tx, nil)
				tx.On("LockProfile", mock.Anything, "intruder").Return(nil)
				tx.On("GetPlaylistForUpdate", mock.Anything, int64(5)).Return(owned, nil)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name:  "Missing Playlist",
			actor: "u1",
			setupMocks: func(repo *mocks.MockPlaylistRepository, tx *mocks.MockPlaylistTx) {
				repo.On("BeginPlaylistTx", mock.Anything).Return(tx, nil)
				tx.On("LockProfile", mock.Anything, "u1").Return(nil)
				tx.On("GetPlaylistForUpdate", mock.Anything, int64(5)).Return(nil, domain.ErrPlaylistNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantErr: domain.ErrPlaylistNotFound,
		},
		{
			name:  "Favorites Rejected",
			actor: "u1",
			setupMocks: func(repo *mocks.MockPlaylistRepository, tx *mocks.MockPlaylistTx) {
				repo.On("BeginPlaylistTx", mock.Anything).Return(tx, nil)
				tx.On("LockProfile", mock.Anything, "u1").Return(nil)
				tx.On("GetPlaylistForUpdate", mock.Anything, int64(5)).
					Return(&domain.Playlist{ID: 5, ProfileID: "u1", IsFavorite: true}, nil)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantErr: domain.ErrFavoritesNotEditable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPlaylistRepository(t)
			tx := mocks.NewMockPlaylistTx(t)
			tt.setupMocks(repo, tx)

			svc := NewService(repo, nil)
			res, err := svc.AddMedia(context.Background(), tt.actor, 5, media)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, res.Added)
			assert.Equal(t, int64(5), res.Playlist.ID)
		})
	}
}

func TestAddMedia_InvalidTmdbID(t *testing.T) {
	repo := mocks.NewMockPlaylistRepository(t)
	svc := NewService(repo, nil)

	_, err := svc.AddMedia(context.Background(), "u1", 5, domain.MediaInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidTmdbID)
}

func TestRemoveMedia(t *testing.T) {
	owned := &domain.Playlist{ID: 5, ProfileID: "u1"}

	t.Run("Idempotent", func(t *testing.T) {
		repo := mocks.NewMockPlaylistRepository(t)
		tx := mocks.NewMockPlaylistTx(t)
		repo.On("BeginPlaylistTx", mock.Anything).Return(tx, nil)
		tx.On("LockProfile", mock.Anything, "u1").Return(nil)
		tx.On("GetPlaylistForUpdate", mock.Anything, int64(5)).Return(owned, nil)
		tx.On("RemovePlaylistMedia", mock.Anything, int64(5), 100).Return(false, nil)
		tx.On("Commit", mock.Anything).Return(nil)
		tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

		err := NewService(repo, nil).RemoveMedia(context.Background(), "u1", 5, 100)
		assert.NoError(t, err)
	})

	t.Run("Not Owner", func(t *testing.T) {
		repo := mocks.NewMockPlaylistRepository(t)
		tx := mocks.NewMockPlaylistTx(t)
		repo.On("BeginPlaylistTx", mock.Anything).Return(tx, nil)
		tx.On("LockProfile", mock.Anything, "u2").Return(nil)
		tx.On("GetPlaylistForUpdate", mock.Anything, int64(5)).Return(owned, nil)
		tx.On("Rollback", mock.Anything).Return(nil)

		err := NewService(repo, nil).RemoveMedia(context.Background(), "u2", 5, 100)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestListForProfile(t *testing.T) {
	all := []domain.Playlist{
		{ID: 1, ProfileID: "owner", Name: domain.FavoritesPlaylistName, IsFavorite: true},
		{ID: 2, ProfileID: "owner", Name: "Public", IsPublic: true},
		{ID: 3, ProfileID: "owner", Name: "Private", IsPublic: false},
	}

	tests := []struct {
		name    string
		viewer  string
		wantIDs []int64
	}{
		{"Owner sees all", "owner", []int64{1, 2, 3}},
		{"Other sees public and favorites", "other", []int64{1, 2}},
		{"Anonymous sees public and favorites", "", []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPlaylistRepository(t)
			repo.On("ListPlaylists", mock.Anything, "owner").Return(all, nil)

			got, err := NewService(repo, nil).ListForProfile(context.Background(), "owner", tt.viewer)
			require.NoError(t, err)

			ids := make([]int64, len(got))
			for i, p := range got {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetFavorites(t *testing.T) {
	t.Run("None", func(t *testing.T) {
		repo := mocks.NewMockPlaylistRepository(t)
		repo.On("GetFavoritesPlaylist", mock.Anything, "u1").Return(nil, domain.ErrPlaylistNotFound)

		fav, err := NewService(repo, nil).GetFavorites(context.Background(), "u1")
		require.NoError(t, err)
		assert.Nil(t, fav)
	})

	t.Run("Found", func(t *testing.T) {
		repo := mocks.NewMockPlaylistRepository(t)
		repo.On("GetFavoritesPlaylist", mock.Anything, "u1").
			Return(&domain.Playlist{ID: 1, ProfileID: "u1", IsFavorite: true}, nil)

		fav, err := NewService(repo, nil).GetFavorites(context.Background(), "u1")
		require.NoError(t, err)
		require.NotNil(t, fav)
		assert.True(t, fav.IsFavorite)
	})

	t.Run("Database Error", func(t *testing.T) {
		repo := mocks.NewMockPlaylistRepository(t)
		repo.On("GetFavoritesPlaylist", mock.Anything, "u1").Return(nil, domain.ErrDatabaseError)

		_, err := NewService(repo, nil).GetFavorites(context.Background(), "u1")
		assert.ErrorIs(t, err, domain.ErrDatabaseError)
	})
}
