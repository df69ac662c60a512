package model

// Author is an audiobook author.
type Author struct {
	Name string `json:"name"`
}

// Narrator is an audiobook narrator.
type Narrator struct {
	Name string `json:"name"`
}

// Audiobook is a full audiobook object.
type Audiobook struct {
	Authors          []Author                `json:"authors"`
	AvailableMarkets []string                `json:"available_markets"`
	Copyrights       []Copyright             `json:"copyrights"`
	Description      string                  `json:"description"`
	HTMLDescription  string                  `json:"html_description"`
	Edition          string                  `json:"edition"`
	Explicit         bool                    `json:"explicit"`
	ExternalURLs     ExternalURLs            `json:"external_urls"`
	Href             string                  `json:"href"`
	ID               string                  `json:"id"`
	Images           []Image                 `json:"images"`
	Languages        []string                `json:"languages"`
	MediaType        string                  `json:"media_type"`
	Name             string                  `json:"name"`
	Narrators        []Narrator              `json:"narrators"`
	Publisher        string                  `json:"publisher"`
	Type             string                  `json:"type"`
	URI              string                  `json:"uri"`
	TotalChapters    int                     `json:"total_chapters"`
	Chapters         Page[SimplifiedChapter] `json:"chapters"`
}

// SimplifiedAudiobook is an audiobook as embedded in chapters and listings.
type SimplifiedAudiobook struct {
	Authors          []Author     `json:"authors"`
	AvailableMarkets []string     `json:"available_markets"`
	Copyrights       []Copyright  `json:"copyrights"`
	Description      string       `json:"description"`
	HTMLDescription  string       `json:"html_description"`
	Edition          string       `json:"edition"`
	Explicit         bool         `json:"explicit"`
	ExternalURLs     ExternalURLs `json:"external_urls"`
	Href             string       `json:"href"`
	ID               string       `json:"id"`
	Images           []Image      `json:"images"`
	Languages        []string     `json:"languages"`
	MediaType        string       `json:"media_type"`
	Name             string       `json:"name"`
	Narrators        []Narrator   `json:"narrators"`
	Publisher        string       `json:"publisher"`
	Type             string       `json:"type"`
	URI              string       `json:"uri"`
	TotalChapters    int          `json:"total_chapters"`
}

// SavedAudiobook is an audiobook in the user's library.
type SavedAudiobook struct {
	AddedAt   string              `json:"added_at"`
	Audiobook SimplifiedAudiobook `json:"audiobook"`
}

// Audiobooks wraps the several audiobooks response.
type Audiobooks struct {
	Audiobooks []Audiobook `json:"audiobooks"`
}

// Chapter is a full audiobook chapter.
type Chapter struct {
	AudioPreviewURL      *string             `json:"audio_preview_url"`
	AvailableMarkets     []string            `json:"available_markets"`
	ChapterNumber        int                 `json:"chapter_number"`
	Description          string              `json:"description"`
	HTMLDescription      string              `json:"html_description"`
	DurationMS           int                 `json:"duration_ms"`
	Explicit             bool                `json:"explicit"`
	ExternalURLs         ExternalURLs        `json:"external_urls"`
	Href                 string              `json:"href"`
	ID                   string              `json:"id"`
	Images               []Image             `json:"images"`
	IsPlayable           bool                `json:"is_playable"`
	Languages            []string            `json:"languages"`
	Name                 string              `json:"name"`
	ReleaseDate          string              `json:"release_date"`
	ReleaseDatePrecision string              `json:"release_date_precision"`
	ResumePoint          *ResumePoint        `json:"resume_point,omitempty"`
	Type                 string              `json:"type"`
	URI                  string              `json:"uri"`
	Restrictions         *Restrictions       `json:"restrictions,omitempty"`
	Audiobook            SimplifiedAudiobook `json:"audiobook"`
}

// SimplifiedChapter is a chapter as listed under an audiobook.
type SimplifiedChapter struct {
	AudioPreviewURL      *string       `json:"audio_preview_url"`
	AvailableMarkets     []string      `json:"available_markets"`
	ChapterNumber        int           `json:"chapter_number"`
	Description          string        `json:"description"`
	HTMLDescription      string        `json:"html_description"`
	DurationMS           int           `json:"duration_ms"`
	Explicit             bool          `json:"explicit"`
	ExternalURLs         ExternalURLs  `json:"external_urls"`
	Href                 string        `json:"href"`
	ID                   string        `json:"id"`
	Images               []Image       `json:"images"`
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

// Chapters wraps the several chapters response.
type Chapters struct {
	Chapters []Chapter `json:"chapters"`
}
