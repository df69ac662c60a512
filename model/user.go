package model

// User is a user profile. Country, Email, ExplicitContent and Product are only present on the
// current user's own profile and only with the matching scopes.
type User struct {
	Country         string           `json:"country,omitempty"`
	DisplayName     *string          `json:"display_name"`
	Email           string           `json:"email,omitempty"`
	ExplicitContent *ExplicitContent `json:"explicit_content,omitempty"`
	ExternalURLs    ExternalURLs     `json:"external_urls"`
	Followers       Followers        `json:"followers"`
	Href            string           `json:"href"`
	ID              string           `json:"id"`
	Images          []Image          `json:"images"`
	Product         string           `json:"product,omitempty"`
	Type            string           `json:"type"`
	URI             string           `json:"uri"`
}

// ExplicitContent holds the user's explicit content settings.
type ExplicitContent struct {
	FilterEnabled bool `json:"filter_enabled"`
	FilterLocked  bool `json:"filter_locked"`
}

// ReferenceUser is the short user object embedded in playlists.
type ReferenceUser struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
	DisplayName  *string      `json:"display_name,omitempty"`
}
