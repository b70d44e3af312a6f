package review

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/mocks"
)

func TestCreateReview(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      domain.ReviewInput
		setupMocks func(*mocks.MockReviewRepository)
		wantErr    error
	}{
		{
			name:  "Success",
			input: domain.ReviewInput{ShowID: 10, Rating: 4, Comment: "  great  "},
			setupMocks: func(m *mocks.MockReviewRepository) {
				m.On("CreateReview", mock.Anything, mock.MatchedBy(func(r domain.Review) bool {
					return r.ShowID == 10 && r.UserID == "u1" && r.Rating == 4 &&
						r.Comment == "great" && r.CreatedAt.Equal(fixed) && r.ID != uuid.Nil
				})).Return(func(_ context.Context, r domain.Review) (*domain.Review, error) {
					return &r, nil
				})
			},
		},
		{
			name:       "Rating Too Low",
			input:      domain.ReviewInput{ShowID: 10, Rating: 0},
			setupMocks: func(*mocks.MockReviewRepository) {},
			wantErr:    domain.ErrInvalidRating,
		},
		{
			name:       "Rating Too High",
			input:      domain.ReviewInput{ShowID: 10, Rating: 6},
			setupMocks: func(*mocks.MockReviewRepository) {},
			wantErr:    domain.ErrInvalidRating,
		},
		{
			name:       "Invalid Show",
			input:      domain.ReviewInput{ShowID: 0, Rating: 3},
			setupMocks: func(*mocks.MockReviewRepository) {},
			wantErr:    domain.ErrInvalidTmdbID,
		},
		{
			name:       "Show ID Above Column Range",
			input:      domain.ReviewInput{ShowID: domain.MaxTmdbID + 1, Rating: 3},
			setupMocks: func(*mocks.MockReviewRepository) {},
			wantErr:    domain.ErrInvalidTmdbID,
		},
		{
			name:       "Comment Too Long",
			input:      domain.ReviewInput{ShowID: 10, Rating: 3, Comment: strings.Repeat("a", domain.MaxCommentLength+1)},
			setupMocks: func(*mocks.MockReviewRepository) {},
			wantErr:    domain.ErrCommentTooLong,
		},
		{
			name:  "Repository Error",
			input: domain.ReviewInput{ShowID: 10, Rating: 3},
			setupMocks: func(m *mocks.MockReviewRepository) {
				m.On("CreateReview", mock.Anything, mock.Anything).Return(nil, domain.ErrDatabaseError)
			},
			wantErr: domain.ErrDatabaseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockReviewRepository(t)
			tt.setupMocks(repo)

			svc := &service{repo: repo, now: func() time.Time { return fixed }}
			got, err := svc.CreateReview(context.Background(), "u1", tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "great", got.Comment)
		})
	}
}

func TestListByShow_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Default", 0, domain.DefaultReviewLimit},
		{"Negative", -5, domain.DefaultReviewLimit},
		{"Within Range", 20, 20},
		{"Above Max", 1000, domain.MaxReviewLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockReviewRepository(t)
			repo.On("ListReviewsByShow", mock.Anything, 10, tt.want).Return([]domain.Review{}, nil)

			_, err := NewService(repo, nil).ListByShow(context.Background(), 10, tt.limit)
			assert.NoError(t, err)
		})
	}
}

func TestDeleteReview(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		actor      string
		setupMocks func(*mocks.MockReviewRepository)
		wantErr    error
	}{
		{
			name:  "Author Deletes",
			actor: "u1",
			setupMocks: func(m *mocks.MockReviewRepository) {
				m.On("GetReview", mock.Anything, id).Return(&domain.Review{ID: id, UserID: "u1"}, nil)
				m.On("DeleteReview", mock.Anything, id).Return(nil)
			},
		},
		{
			name:  "Not Author",
			actor: "u2",
			setupMocks: func(m *mocks.MockReviewRepository) {
				m.On("GetReview", mock.Anything, id).Return(&domain.Review{ID: id, UserID: "u1"}, nil)
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name:  "Missing",
			actor: "u1",
			setupMocks: func(m *mocks.MockReviewRepository) {
				m.On("GetReview", mock.Anything, id).Return(nil, domain.ErrReviewNotFound)
			},
			wantErr: domain.ErrReviewNotFound,
		},
		{
			name:  "Concurrent Delete",
			actor: "u1",
			setupMocks: func(m *mocks.MockReviewRepository) {
				m.On("GetReview", mock.Anything, id).Return(&domain.Review{ID: id, UserID: "u1"}, nil)
				m.On("DeleteReview", mock.Anything, id).Return(domain.ErrReviewNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockReviewRepository(t)
			tt.setupMocks(repo)

			err := NewService(repo, nil).DeleteReview(context.Background(), tt.actor, id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
