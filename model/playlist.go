package model

// Playlist is a full playlist object.
type Playlist struct {
	Collaborative bool               `json:"collaborative"`
	Description   *string            `json:"description"`
	ExternalURLs  ExternalURLs       `json:"external_urls"`
	Followers     Followers          `json:"followers"`
	Href          string             `json:"href"`
	ID            string             `json:"id"`
	Images        []Image            `json:"images"`
	Name          string             `json:"name"`
	Owner         ReferenceUser      `json:"owner"`
	Public        *bool              `json:"public"`
	SnapshotID    string             `json:"snapshot_id"`
	Tracks        Page[PlaylistItem] `json:"tracks"`
	Type          string             `json:"type"`
	URI           string             `json:"uri"`
}

// SimplifiedPlaylist is a playlist as listed in pages.
type SimplifiedPlaylist struct {
	Collaborative bool              `json:"collaborative"`
	Description   *string           `json:"description"`
	ExternalURLs  ExternalURLs      `json:"external_urls"`
	Href          string            `json:"href"`
	ID            string            `json:"id"`
	Images        []Image           `json:"images"`
	Name          string            `json:"name"`
	Owner         ReferenceUser     `json:"owner"`
	Public        *bool             `json:"public"`
	SnapshotID    string            `json:"snapshot_id"`
	Tracks        PlaylistTracksRef `json:"tracks"`
	Type          string            `json:"type"`
	URI           string            `json:"uri"`
}

// PlaylistTracksRef locates the items of a simplified playlist.
type PlaylistTracksRef struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// PlaylistItem is one entry of a playlist. Track is nil for items that are no longer available.
type PlaylistItem struct {
	AddedAt string         `json:"added_at"`
	AddedBy *ReferenceUser `json:"added_by"`
	IsLocal bool           `json:"is_local"`
	Track   *PlayableItem  `json:"track"`
}

// FeaturedPlaylists is returned by the featured and category playlist listings.
type FeaturedPlaylists struct {
	Message   string                   `json:"message"`
	Playlists Page[SimplifiedPlaylist] `json:"playlists"`
}
