package tracking

// Log messages
const (
	LogMsgFavoriteAdded      = "Favorite added"
	LogMsgFavoriteRemoved    = "Favorite removed"
	LogMsgShowStateChanged   = "Show state changed"
	LogMsgShowStateUnchanged = "Show state unchanged"
	LogMsgRatingSaved        = "Rating saved"
	LogMsgCountersReconciled = "Profile counters reconciled"
)

// Error message prefixes used when wrapping repository errors
const (
	ErrContextFailedToBeginTx      = "failed to begin transaction"
	ErrContextFailedToLockProfile  = "failed to lock profile"
	ErrContextFailedToUpsertMedia  = "failed to upsert media"
	ErrContextFailedToLoadFavorite = "failed to load favorites playlist"
	ErrContextFailedToUpdateState  = "failed to update show state"
	ErrContextFailedToRecount      = "failed to recount profile"
	ErrContextFailedToCommit       = "failed to commit"
)

// stateField names the watch-state boolean a toggle operates on
type stateField string

const (
	fieldWatched stateField = "watched"
	fieldListed  stateField = "listed"
)
