package domain

import "time"

// Playlist is a named list of media owned by a profile
type Playlist struct {
	ID            int64           `json:"id"`
	ProfileID     string          `json:"profileId"`
	OwnerUsername *string         `json:"ownerUsername,omitempty"`
	Name          string          `json:"name"`
	IsFavorite    bool            `json:"isFavorite"`
	IsPublic      bool            `json:"isPublic"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	PlaylistMedia []PlaylistMedia `json:"playlistMedia"`
}

// PlaylistMedia is a membership row joining a playlist to a media item
type PlaylistMedia struct {
	PlaylistID  int64     `json:"playlistId"`
	MediaTmdbID int       `json:"mediaTmdbId"`
	AddedAt     time.Time `json:"addedAt"`
	Media       Media     `json:"media"`
}

// VisibleTo reports whether a viewer may see the playlist.
// Owners see everything; others see public playlists and favorites.
func (p *Playlist) VisibleTo(viewerID string) bool {
	return p.ProfileID == viewerID || p.IsPublic || p.IsFavorite
}

// Contains reports whether the playlist holds the given media item
func (p *Playlist) Contains(tmdbID int) bool {
	for _, pm := range p.PlaylistMedia {
		if pm.MediaTmdbID == tmdbID {
			return true
		}
	}
	return false
}

// PlaylistMembershipResult is returned by add-to-playlist operations
type PlaylistMembershipResult struct {
	Playlist *Playlist
	Added    bool // false when the media was already a member
}
