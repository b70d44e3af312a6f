package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SceneIt_Go/internal/database/generated"
	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

// ReviewRepository implements repository.Review
type ReviewRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

var _ repository.Review = (*ReviewRepository)(nil)

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CreateReview inserts a review and returns it with the author's username.
// The author's profile row is created first when this is their first action.
func (r *ReviewRepository) CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, dbError(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	if err := q.EnsureProfileRow(ctx, review.UserID); err != nil {
		return nil, dbError(ErrMsgFailedToCreateReview, err)
	}
	if err := q.CreateReview(ctx, generated.CreateReviewParams{
		ID:        review.ID,
		ShowID:    int32(review.ShowID),
		ProfileID: review.UserID,
		Rating:    int16(review.Rating),
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}); err != nil {
		return nil, dbError(ErrMsgFailedToCreateReview, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, dbError(ErrMsgFailedToCommit, err)
	}
	return r.GetReview(ctx, review.ID)
}

// GetReview returns a review by id
func (r *ReviewRepository) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	row, err := r.q.GetReview(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, dbError(ErrMsgFailedToLoadReviews, err)
	}
	review := mapReview(row)
	return &review, nil
}

// ListReviewsByShow returns a show's reviews, newest first
func (r *ReviewRepository) ListReviewsByShow(ctx context.Context, showID int, limit int) ([]domain.Review, error) {
	rows, err := r.q.ListReviewsByShow(ctx, generated.ListReviewsByShowParams{
		ShowID: int32(showID),
		Limit:  int32(limit),
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToLoadReviews, err)
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, mapReview(generated.GetReviewRow(row)))
	}
	return reviews, nil
}

// ListReviewsByUser returns a profile's reviews, newest first
func (r *ReviewRepository) ListReviewsByUser(ctx context.Context, profileID string) ([]domain.Review, error) {
	rows, err := r.q.ListReviewsByUser(ctx, profileID)
	if err != nil {
		return nil, dbError(ErrMsgFailedToLoadReviews, err)
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, mapReview(generated.GetReviewRow(row)))
	}
	return reviews, nil
}

// DeleteReview removes a review
func (r *ReviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	affected, err := r.q.DeleteReview(ctx, id)
	if err != nil {
		return dbError(ErrMsgFailedToDeleteReview, err)
	}
	if affected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
