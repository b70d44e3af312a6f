package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SceneIt_Go/internal/database/generated"
	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// ProfileRepository implements repository.Profile
type ProfileRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

var _ repository.Profile = (*ProfileRepository)(nil)

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		q:  generated.New(db),
	}
}

// EnsureProfile upserts the profile for a verified identity
func (r *ProfileRepository) EnsureProfile(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	row, err := r.q.UpsertProfileIdentity(ctx, generated.UpsertProfileIdentityParams{
		ID:    identity.Subject,
		Email: identity.Email,
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToLoadProfile, err)
	}
	if row.Username.Valid || identity.Username == "" {
		return mapProfile(row), nil
	}

	// Claim the username from the token only while it is free
	claimed, err := r.q.ClaimUsername(ctx, generated.ClaimUsernameParams{
		Username: identity.Username,
		ID:       identity.Subject,
	})
	if err != nil {
		if isUniqueViolation(err) || errors.Is(err, pgx.ErrNoRows) {
			logger.FromContext(ctx).Debug("Claimed username unavailable",
				"profile_id", identity.Subject,
				"username", identity.Username)
			return mapProfile(row), nil
		}
		return nil, dbError(ErrMsgFailedToUpdateProfile, err)
	}
	return mapProfile(claimed), nil
}

// GetProfile returns a profile by id
func (r *ProfileRepository) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	row, err := r.q.GetProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, dbError(ErrMsgFailedToLoadProfile, err)
	}
	return mapProfile(row), nil
}

// UpdateProfile applies the non-nil fields. An empty image url clears it.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profileID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	row, err := r.q.UpdateProfile(ctx, generated.UpdateProfileParams{
		Username:        ptrToText(update.Username),
		About:           ptrToText(update.About),
		ProfileImageUrl: ptrToText(update.ProfileImageURL),
		ID:              profileID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, dbError(ErrMsgFailedToUpdateProfile, err)
	}
	return mapProfile(row), nil
}
