package domain

import "math"

// Favorites playlist defaults
const (
	FavoritesPlaylistName = "Favorites"
	DefaultMediaTitle     = "Unknown Show"
)

// MaxTmdbID is the largest catalog id the INTEGER columns can hold
const MaxTmdbID = math.MaxInt32

// Rating bounds (five-star scale)
const (
	MinRating = 1
	MaxRating = 5
)

// Field limits
const (
	MaxPlaylistNameLength = 100
	MaxCommentLength      = 2000
	MaxAboutLength        = 500
	MinUsernameLength     = 3
	MaxUsernameLength     = 30
)

// Review listing limits
const (
	DefaultReviewLimit = 50
	MaxReviewLimit     = 200
)
