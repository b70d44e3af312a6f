package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Profile errors
	ErrMsgProfileNotFound   = "profile not found"
	ErrMsgUsernameTaken     = "username already taken"
	ErrMsgInvalidUsername   = "invalid username"
	ErrMsgInvalidProfileURL = "invalid profile image url"

	// Media errors
	ErrMsgInvalidTmdbID = "invalid tmdb id"

	// Playlist errors
	ErrMsgPlaylistNotFound     = "playlist not found"
	ErrMsgInvalidPlaylistName  = "invalid playlist name"
	ErrMsgFavoritesNotEditable = "favorites playlist cannot be edited directly"

	// Rating and review errors
	ErrMsgInvalidRating   = "rating must be between 1 and 5"
	ErrMsgReviewNotFound  = "review not found"
	ErrMsgCommentTooLong  = "comment is too long"

	// Access errors
	ErrMsgUnauthorized = "unauthorized"
	ErrMsgForbidden    = "forbidden"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Profile errors
	ErrProfileNotFound   = errors.New(ErrMsgProfileNotFound)
	ErrUsernameTaken     = errors.New(ErrMsgUsernameTaken)
	ErrInvalidUsername   = errors.New(ErrMsgInvalidUsername)
	ErrInvalidProfileURL = errors.New(ErrMsgInvalidProfileURL)

	// Media errors
	ErrInvalidTmdbID = errors.New(ErrMsgInvalidTmdbID)

	// Playlist errors
	ErrPlaylistNotFound     = errors.New(ErrMsgPlaylistNotFound)
	ErrInvalidPlaylistName  = errors.New(ErrMsgInvalidPlaylistName)
	ErrFavoritesNotEditable = errors.New(ErrMsgFavoritesNotEditable)

	// Rating and review errors
	ErrInvalidRating  = errors.New(ErrMsgInvalidRating)
	ErrReviewNotFound = errors.New(ErrMsgReviewNotFound)
	ErrCommentTooLong = errors.New(ErrMsgCommentTooLong)

	// Access errors
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
	ErrForbidden    = errors.New(ErrMsgForbidden)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
