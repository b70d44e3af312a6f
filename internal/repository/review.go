package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

// Review defines data access for free-standing reviews
type Review interface {
	CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListReviewsByShow(ctx context.Context, showID int, limit int) ([]domain.Review, error)
	ListReviewsByUser(ctx context.Context, profileID string) ([]domain.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}
