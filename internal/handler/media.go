package handler

import "github.com/osse101/SceneIt_Go/internal/domain"

// MediaFields is the catalog subset a client sends alongside an action.
// The service caches whatever is supplied; only the id is required.
type MediaFields struct {
	Title       string  `json:"title" validate:"max=500"`
	PosterURL   *string `json:"posterUrl,omitempty" validate:"omitempty,max=2048"`
	Description *string `json:"description,omitempty"`
	ReleaseYear *int    `json:"releaseYear,omitempty" validate:"omitempty,gte=1800,lte=3000"`
	Producer    *string `json:"producer,omitempty" validate:"omitempty,max=500"`
}

func (m MediaFields) toInput(tmdbID int) domain.MediaInput {
	return domain.MediaInput{
		TmdbID:      tmdbID,
		Title:       m.Title,
		PosterURL:   m.PosterURL,
		Description: m.Description,
		ReleaseYear: m.ReleaseYear,
		Producer:    m.Producer,
	}
}
