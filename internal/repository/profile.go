package repository

import (
	"context"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

// Profile defines data access for user profiles
type Profile interface {
	// EnsureProfile inserts the profile if missing and fills empty email/username
	// from the identity. A claimed username that is already taken is skipped.
	EnsureProfile(ctx context.Context, identity domain.Identity) (*domain.Profile, error)
	GetProfile(ctx context.Context, profileID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, update domain.ProfileUpdate) (*domain.Profile, error)
}
