package domain

import "time"

// Profile is a SceneIt user, keyed by the identity provider's subject id
type Profile struct {
	ID              string    `json:"userId"`
	Username        *string   `json:"username"`
	Email           *string   `json:"email,omitempty"`
	About           string    `json:"about"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	Watched         int       `json:"watched"`
	Rated           int       `json:"rated"`
	WantToWatch     int       `json:"wantToWatch"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProfileCounters are the denormalized aggregates stored on a profile
type ProfileCounters struct {
	Watched     int `json:"watched"`
	Rated       int `json:"rated"`
	WantToWatch int `json:"wantToWatch"`
}

// Counters returns the aggregate counters of the profile
func (p *Profile) Counters() ProfileCounters {
	return ProfileCounters{
		Watched:     p.Watched,
		Rated:       p.Rated,
		WantToWatch: p.WantToWatch,
	}
}

// Identity is the verified caller extracted from a bearer token
type Identity struct {
	Subject  string `json:"id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// ProfileUpdate holds the editable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	Username        *string
	About           *string
	ProfileImageURL *string
}

// IsEmpty reports whether the update changes nothing
func (u ProfileUpdate) IsEmpty() bool {
	return u.Username == nil && u.About == nil && u.ProfileImageURL == nil
}
