package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s"
	ErrMsgInvalidFilter     = "filter must be one of watched, listed, all"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidReviewID   = "Invalid review id"

	// Ownership
	ErrMsgIdentityMismatch = "You can only act on your own account"
)

// Success messages for API responses
const (
	MsgBanner                  = "Backend server ran successfully!"
	MsgMediaAlreadyInFavorites = "Media already in favorites"
	MsgMediaAlreadyInPlaylist  = "Media already in playlist"
	MsgMediaRemoved            = "Media removed successfully"
	MsgFavoriteRemoved         = "Removed from favorites"
	MsgFavoriteNotPresent      = "Media was not in favorites"
	MsgNoFavoritesPlaylist     = "No favorites playlist found."
	MsgReviewDeleted           = "Review deleted"
)
