package model

// Album is a full album object.
type Album struct {
	AlbumType            string                `json:"album_type"`
	TotalTracks          int                   `json:"total_tracks"`
	AvailableMarkets     []string              `json:"available_markets"`
	ExternalURLs         ExternalURLs          `json:"external_urls"`
	Href                 string                `json:"href"`
	ID                   string                `json:"id"`
	Images               []Image               `json:"images"`
	Name                 string                `json:"name"`
	ReleaseDate          string                `json:"release_date"`
	ReleaseDatePrecision string                `json:"release_date_precision"`
	Restrictions         *Restrictions         `json:"restrictions,omitempty"`
	Type                 string                `json:"type"`
	URI                  string                `json:"uri"`
	Artists              []SimplifiedArtist    `json:"artists"`
	Tracks               Page[SimplifiedTrack] `json:"tracks"`
	Copyrights           []Copyright           `json:"copyrights"`
	ExternalIDs          ExternalIDs           `json:"external_ids"`
	Genres               []string              `json:"genres"`
	Label                string                `json:"label"`
	Popularity           int                   `json:"popularity"`
}

// SimplifiedAlbum is an album as embedded in tracks, artists' albums and listings.
type SimplifiedAlbum struct {
	AlbumType            string             `json:"album_type"`
	TotalTracks          int                `json:"total_tracks"`
	AvailableMarkets     []string           `json:"available_markets"`
	ExternalURLs         ExternalURLs       `json:"external_urls"`
	Href                 string             `json:"href"`
	ID                   string             `json:"id"`
	Images               []Image            `json:"images"`
	Name                 string             `json:"name"`
	ReleaseDate          string             `json:"release_date"`
	ReleaseDatePrecision string             `json:"release_date_precision"`
	Restrictions         *Restrictions      `json:"restrictions,omitempty"`
	Type                 string             `json:"type"`
	URI                  string             `json:"uri"`
	Artists              []SimplifiedArtist `json:"artists"`
	// AlbumGroup is only set on artist album listings.
	AlbumGroup string `json:"album_group,omitempty"`
}

// SavedAlbum is an album in the user's library with the time it was added.
type SavedAlbum struct {
	AddedAt string `json:"added_at"`
	Album   Album  `json:"album"`
}

// Albums wraps the several albums response.
type Albums struct {
	Albums []Album `json:"albums"`
}

// NewReleases wraps the new releases page.
type NewReleases struct {
	Albums Page[SimplifiedAlbum] `json:"albums"`
}
