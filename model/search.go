package model

// SearchResults holds one page per requested item type; pages of types that were not requested are nil.
type SearchResults struct {
	Tracks     *Page[Track]                `json:"tracks,omitempty"`
	Artists    *Page[Artist]               `json:"artists,omitempty"`
	Albums     *Page[SimplifiedAlbum]      `json:"albums,omitempty"`
	Playlists  *Page[*SimplifiedPlaylist]  `json:"playlists,omitempty"`
	Shows      *Page[*SimplifiedShow]      `json:"shows,omitempty"`
	Episodes   *Page[*SimplifiedEpisode]   `json:"episodes,omitempty"`
	Audiobooks *Page[*SimplifiedAudiobook] `json:"audiobooks,omitempty"`
}
