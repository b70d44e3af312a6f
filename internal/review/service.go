package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/event"
	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// Service defines the review service interface
type Service interface {
	CreateReview(ctx context.Context, authorID string, input domain.ReviewInput) (*domain.Review, error)

	// ListByShow returns the newest reviews first. A limit outside 1..MaxReviewLimit is clamped.
	ListByShow(ctx context.Context, showID int, limit int) ([]domain.Review, error)
	ListByUser(ctx context.Context, profileID string) ([]domain.Review, error)

	// DeleteReview removes a review written by the actor
	DeleteReview(ctx context.Context, actorID string, reviewID uuid.UUID) error
}

type service struct {
	repo repository.Review
	bus  event.Bus
	now  func() time.Time
}

// NewService creates a new review service. bus may be nil.
func NewService(repo repository.Review, bus event.Bus) Service {
	return &service{
		repo: repo,
		bus:  bus,
		now:  time.Now,
	}
}

func (s *service) CreateReview(ctx context.Context, authorID string, input domain.ReviewInput) (*domain.Review, error) {
	if err := domain.ValidateTmdbID(input.ShowID); err != nil {
		return nil, err
	}
	if err := domain.ValidateRating(input.Rating); err != nil {
		return nil, err
	}
	comment := strings.TrimSpace(input.Comment)
	if utf8.RuneCountInString(comment) > domain.MaxCommentLength {
		return nil, domain.ErrCommentTooLong
	}

	created, err := s.repo.CreateReview(ctx, domain.Review{
		ID:        uuid.New(),
		ShowID:    input.ShowID,
		UserID:    authorID,
		Rating:    input.Rating,
		Comment:   comment,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	logger.FromContext(ctx).Info("Review created",
		"review_id", created.ID,
		"show_id", created.ShowID,
		"profile_id", authorID)
	event.Emit(ctx, s.bus, event.New(event.ReviewCreated, event.ReviewPayloadV1{
		ReviewID:  created.ID.String(),
		ShowID:    created.ShowID,
		ProfileID: authorID,
		Rating:    created.Rating,
	}))
	return created, nil
}

func (s *service) ListByShow(ctx context.Context, showID int, limit int) ([]domain.Review, error) {
	if err := domain.ValidateTmdbID(showID); err != nil {
		return nil, err
	}
	return s.repo.ListReviewsByShow(ctx, showID, clampLimit(limit))
}

func (s *service) ListByUser(ctx context.Context, profileID string) ([]domain.Review, error) {
	return s.repo.ListReviewsByUser(ctx, profileID)
}

func (s *service) DeleteReview(ctx context.Context, actorID string, reviewID uuid.UUID) error {
	existing, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if existing.UserID != actorID {
		return domain.ErrForbidden
	}

	if err := s.repo.DeleteReview(ctx, reviewID); err != nil {
		// Deleted concurrently by the same author
		if errors.Is(err, domain.ErrReviewNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	logger.FromContext(ctx).Info("Review deleted", "review_id", reviewID, "profile_id", actorID)
	event.Emit(ctx, s.bus, event.New(event.ReviewDeleted, event.ReviewPayloadV1{
		ReviewID:  reviewID.String(),
		ShowID:    existing.ShowID,
		ProfileID: actorID,
	}))
	return nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return domain.DefaultReviewLimit
	case limit > domain.MaxReviewLimit:
		return domain.MaxReviewLimit
	default:
		return limit
	}
}
