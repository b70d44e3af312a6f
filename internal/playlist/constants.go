package playlist

// Log messages
const (
	LogMsgPlaylistCreated = "Playlist created"
	LogMsgMediaAdded      = "Media added to playlist"
	LogMsgMediaRemoved    = "Media removed from playlist"
)

// Error message prefixes used when wrapping repository errors
const (
	ErrContextFailedToBeginTx     = "failed to begin transaction"
	ErrContextFailedToLockProfile = "failed to lock profile"
	ErrContextFailedToLoad        = "failed to load playlist"
	ErrContextFailedToCreate      = "failed to create playlist"
	ErrContextFailedToUpsertMedia = "failed to upsert media"
	ErrContextFailedToCommit      = "failed to commit"
)
