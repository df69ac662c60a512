package model

// Artist is a full artist object.
type Artist struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Followers    Followers    `json:"followers"`
	Genres       []string     `json:"genres"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Images       []Image      `json:"images"`
	Name         string       `json:"name"`
	Popularity   int          `json:"popularity"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// SimplifiedArtist is an artist as embedded in albums and tracks.
type SimplifiedArtist struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// Artists wraps the several artists response.
type Artists struct {
	Artists []Artist `json:"artists"`
}

// FollowedArtists wraps the cursor page of artists the user follows.
type FollowedArtists struct {
	Artists CursorPage[Artist] `json:"artists"`
}
