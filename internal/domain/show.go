package domain

import "time"

// UserShow is the per (profile, media) watch state.
// Watched and Listed are independent; all four combinations are valid.
type UserShow struct {
	ProfileID   string    `json:"profileId"`
	MediaTmdbID int       `json:"tmdbId"`
	Watched     bool      `json:"watched"`
	Listed      bool      `json:"listed"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Media       *Media    `json:"media,omitempty"`
}

// ShowState is the caller's view of a single media item
type ShowState struct {
	TmdbID   int             `json:"tmdbId"`
	Watched  bool            `json:"watched"`
	Listed   bool            `json:"listed"`
	Rating   *Rating         `json:"rating,omitempty"`
	Counters ProfileCounters `json:"counters"`
}

// ShowFilter selects which user shows to list
type ShowFilter string

const (
	ShowFilterAll     ShowFilter = "all"
	ShowFilterWatched ShowFilter = "watched"
	ShowFilterListed  ShowFilter = "listed"
)

// ParseShowFilter converts a query value into a ShowFilter. Empty means all.
func ParseShowFilter(s string) (ShowFilter, error) {
	switch ShowFilter(s) {
	case "", ShowFilterAll:
		return ShowFilterAll, nil
	case ShowFilterWatched:
		return ShowFilterWatched, nil
	case ShowFilterListed:
		return ShowFilterListed, nil
	default:
		return "", ErrInvalidInput
	}
}
