package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a profile's score for a media item, unique per (profile, media)
type Rating struct {
	ProfileID   string    `json:"profileId"`
	MediaTmdbID int       `json:"mediaTmdbId"`
	Rating      int       `json:"rating"`
	Review      *string   `json:"review"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RatingInput is a rating save request for the acting profile
type RatingInput struct {
	Media  MediaInput
	Rating int
	Review *string
}

// ValidateRating checks a score against the five-star scale
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// Review is a free-standing written review. A profile may write several per show.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ShowID    int       `json:"showId"`
	UserID    string    `json:"userId"`
	Username  *string   `json:"username,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewInput is a review submission by the acting profile
type ReviewInput struct {
	ShowID  int
	Rating  int
	Comment string
}
