package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SceneIt_Go/internal/database/postgres"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Profile  repository.Profile
	Playlist repository.Playlist
	Tracking repository.Tracking
	Review   repository.Review
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Profile:  postgres.NewProfileRepository(dbPool),
		Playlist: postgres.NewPlaylistRepository(dbPool),
		Tracking: postgres.NewTrackingRepository(dbPool),
		Review:   postgres.NewReviewRepository(dbPool),
	}
}
