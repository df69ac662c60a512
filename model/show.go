package model

// Show is a full show object.
type Show struct {
	AvailableMarkets   []string                `json:"available_markets"`
	Copyrights         []Copyright             `json:"copyrights"`
	Description        string                  `json:"description"`
	HTMLDescription    string                  `json:"html_description"`
	Explicit           bool                    `json:"explicit"`
	ExternalURLs       ExternalURLs            `json:"external_urls"`
	Href               string                  `json:"href"`
	ID                 string                  `json:"id"`
	Images             []Image                 `json:"images"`
	IsExternallyHosted bool                    `json:"is_externally_hosted"`
	Languages          []string                `json:"languages"`
	MediaType          string                  `json:"media_type"`
	Name               string                  `json:"name"`
	Publisher          string                  `json:"publisher"`
	Type               string                  `json:"type"`
	URI                string                  `json:"uri"`
	TotalEpisodes      int                     `json:"total_episodes"`
	Episodes           Page[SimplifiedEpisode] `json:"episodes"`
}

// SimplifiedShow is a show as embedded in episodes and listings.
type SimplifiedShow struct {
	AvailableMarkets   []string     `json:"available_markets"`
	Copyrights         []Copyright  `json:"copyrights"`
	Description        string       `json:"description"`
	HTMLDescription    string       `json:"html_description"`
	Explicit           bool         `json:"explicit"`
	ExternalURLs       ExternalURLs `json:"external_urls"`
	Href               string       `json:"href"`
	ID                 string       `json:"id"`
	Images             []Image      `json:"images"`
	IsExternallyHosted bool         `json:"is_externally_hosted"`
	Languages          []string     `json:"languages"`
	MediaType          string       `json:"media_type"`
	Name               string       `json:"name"`
	Publisher          string       `json:"publisher"`
	Type               string       `json:"type"`
	URI                string       `json:"uri"`
	TotalEpisodes      int          `json:"total_episodes"`
}

// SavedShow is a show in the user's library.
type SavedShow struct {
	AddedAt string         `json:"added_at"`
	Show    SimplifiedShow `json:"show"`
}

// Shows wraps the several shows response.
type Shows struct {
	Shows []SimplifiedShow `json:"shows"`
}

// Episode is a full episode object.
type Episode struct {
	AudioPreviewURL      *string        `json:"audio_preview_url"`
	Description          string         `json:"description"`
	HTMLDescription      string         `json:"html_description"`
	DurationMS           int            `json:"duration_ms"`
	Explicit             bool           `json:"explicit"`
	ExternalURLs         ExternalURLs   `json:"external_urls"`
	Href                 string         `json:"href"`
	ID                   string         `json:"id"`
	Images               []Image        `json:"images"`
	IsExternallyHosted   bool           `json:"is_externally_hosted"`
	IsPlayable           bool           `json:"is_playable"`
	Languages            []string       `json:"languages"`
	Name                 string         `json:"name"`
	ReleaseDate          string         `json:"release_date"`
	ReleaseDatePrecision string         `json:"release_date_precision"`
	ResumePoint          *ResumePoint   `json:"resume_point,omitempty"`
	Type                 string         `json:"type"`
	URI                  string         `json:"uri"`
	Restrictions         *Restrictions  `json:"restrictions,omitempty"`
	Show                 SimplifiedShow `json:"show"`
}

// SimplifiedEpisode is an episode as listed under a show.
type SimplifiedEpisode struct {
	AudioPreviewURL      *string       `json:"audio_preview_url"`
	Description          string        `json:"description"`
	HTMLDescription      string        `json:"html_description"`
	DurationMS           int           `json:"duration_ms"`
	Explicit             bool          `json:"explicit"`
	ExternalURLs         ExternalURLs  `json:"external_urls"`
	Href                 string        `json:"href"`
	ID                   string        `json:"id"`
	Images               []Image       `json:"images"`
	IsExternallyHosted   bool          `json:"is_externally_hosted"`
	IsPlayable           bool          `json:"is_playable"`
	Languages            []string      `json:"languages"`
	Name                 string        `json:"name"`
	ReleaseDate          string        `json:"release_date"`
	ReleaseDatePrecision string        `json:"release_date_precision"`
	ResumePoint          *ResumePoint  `json:"resume_point,omitempty"`
	Type                 string        `json:"type"`
	URI                  string        `json:"uri"`
	Restrictions         *Restrictions `json:"restrictions,omitempty"`
}

// SavedEpisode is an episode in the user's library.
type SavedEpisode struct {
	AddedAt string  `json:"added_at"`
	Episode Episode `json:"episode"`
}

// Episodes wraps the several episodes response.
type Episodes struct {
	Episodes []Episode `json:"episodes"`
}
