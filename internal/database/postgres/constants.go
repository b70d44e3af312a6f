package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Column lists for the queries whose WHERE clause is assembled at runtime
const (
	mediaColumns = `m.tmdb_id, m.title, m.description, m.poster_url, m.release_year, m.producer, m.created_at, m.updated_at`

	playlistColumns = `p.id, p.profile_id, pr.username, p.name, p.is_favorite, p.is_public, p.created_at, p.updated_at`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
)

// Error Messages - Query Operations
const (
	ErrMsgFailedToLockProfile    = "failed to lock profile"
	ErrMsgFailedToUpsertMedia    = "failed to upsert media"
	ErrMsgFailedToLoadPlaylist   = "failed to load playlist"
	ErrMsgFailedToLoadMedia      = "failed to load playlist media"
	ErrMsgFailedToAddMedia       = "failed to add playlist media"
	ErrMsgFailedToRemoveMedia    = "failed to remove playlist media"
	ErrMsgFailedToRecount        = "failed to recount profile"
	ErrMsgFailedToLoadUserShow   = "failed to load user show"
	ErrMsgFailedToSaveUserShow   = "failed to save user show"
	ErrMsgFailedToUpsertRating   = "failed to upsert rating"
	ErrMsgFailedToLoadRating     = "failed to load rating"
	ErrMsgFailedToLoadProfile    = "failed to load profile"
	ErrMsgFailedToUpdateProfile  = "failed to update profile"
	ErrMsgFailedToCreatePlaylist = "failed to create playlist"
	ErrMsgFailedToCreateReview   = "failed to create review"
	ErrMsgFailedToLoadReviews    = "failed to load reviews"
	ErrMsgFailedToDeleteReview   = "failed to delete review"
	ErrMsgFailedToReconcile      = "failed to reconcile counters"
)
