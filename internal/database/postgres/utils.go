package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SceneIt_Go/internal/database/generated"
	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

var (
	_ generated.DBTX = (*pgxpool.Pool)(nil)
	_ generated.DBTX = (pgx.Tx)(nil)
)

// ---- Common Helper Functions ----

// dbError wraps a driver error so callers can match domain.ErrDatabaseError
// while the original cause stays available for logging.
func dbError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDatabaseError, err)
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// beginTx starts a transaction on the pool with queries bound to it
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*pgTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, dbError(ErrMsgFailedToBeginTransaction, err)
	}
	return &pgTx{tx: tx, q: q.WithTx(tx)}, nil
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func int4ToPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func ptrToInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}

func mapProfile(p generated.Profile) *domain.Profile {
	return &domain.Profile{
		ID:              p.ID,
		Username:        textToPtr(p.Username),
		Email:           textToPtr(p.Email),
		About:           p.About,
		ProfileImageURL: textToPtr(p.ProfileImageUrl),
		Watched:         int(p.Watched),
		Rated:           int(p.Rated),
		WantToWatch:     int(p.WantToWatch),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func mapMedia(m generated.Medium) domain.Media {
	return domain.Media{
		TmdbID:      int(m.TmdbID),
		Title:       m.Title,
		Description: textToPtr(m.Description),
		PosterURL:   textToPtr(m.PosterUrl),
		ReleaseYear: int4ToPtr(m.ReleaseYear),
		Producer:    textToPtr(m.Producer),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func mapRating(r generated.Rating) *domain.Rating {
	return &domain.Rating{
		ProfileID:   r.ProfileID,
		MediaTmdbID: int(r.MediaTmdbID),
		Rating:      int(r.Rating),
		Review:      textToPtr(r.Review),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func mapReview(r generated.GetReviewRow) domain.Review {
	return domain.Review{
		ID:        r.ID,
		ShowID:    int(r.ShowID),
		UserID:    r.ProfileID,
		Username:  textToPtr(r.Username),
		Rating:    int(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// ---- End Common Helper Functions ----
