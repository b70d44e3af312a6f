package domain

import "time"

// Media is the local cache of a catalog item, keyed by its TMDB id
type Media struct {
	TmdbID      int       `json:"tmdbId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	PosterURL   *string   `json:"posterUrl"`
	ReleaseYear *int      `json:"releaseYear,omitempty"`
	Producer    *string   `json:"producer,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MediaInput is the catalog subset a caller passes in alongside an action.
// Only TmdbID is required; missing fields never overwrite cached values.
type MediaInput struct {
	TmdbID      int
	Title       string
	Description *string
	PosterURL   *string
	ReleaseYear *int
	Producer    *string
}

// Validate checks the catalog id
func (m MediaInput) Validate() error {
	return ValidateTmdbID(m.TmdbID)
}

// ValidateTmdbID rejects ids outside 1..MaxTmdbID
func ValidateTmdbID(id int) error {
	if id <= 0 || id > MaxTmdbID {
		return ErrInvalidTmdbID
	}
	return nil
}

// TitleOrDefault returns the supplied title or the stub title for unknown items
func (m MediaInput) TitleOrDefault() string {
	if m.Title == "" {
		return DefaultMediaTitle
	}
	return m.Title
}
