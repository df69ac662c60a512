package model

// Nil is the result of endpoints that answer with an empty body.
type Nil struct{}

// Image is a cover art or profile image. Height and Width are zero when unknown.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Followers holds the follower count.
type Followers struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// ExternalURLs holds known external URLs for an object.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// ExternalIDs holds known external identifiers such as ISRC and UPC.
type ExternalIDs struct {
	ISRC string `json:"isrc"`
	EAN  string `json:"ean"`
	UPC  string `json:"upc"`
}

// Copyright is a copyright statement.
type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Restrictions explains why content is not playable.
type Restrictions struct {
	Reason string `json:"reason"`
}

// ResumePoint is the user's most recent position in an episode or chapter.
type ResumePoint struct {
	FullyPlayed      bool `json:"fully_played"`
	ResumePositionMS int  `json:"resume_position_ms"`
}

// Page is an offset paged collection.
type Page[T any] struct {
	Href     string  `json:"href"`
	Items    []T     `json:"items"`
	Limit    int     `json:"limit"`
	Next     *string `json:"next"`
	Offset   int     `json:"offset"`
	Previous *string `json:"previous"`
	Total    int     `json:"total"`
}

// Cursors holds the cursors of a cursor page.
type Cursors struct {
	After  string `json:"after"`
	Before string `json:"before"`
}

// CursorPage is a cursor paged collection.
type CursorPage[T any] struct {
	Href    string  `json:"href"`
	Items   []T     `json:"items"`
	Limit   int     `json:"limit"`
	Next    *string `json:"next"`
	Cursors Cursors `json:"cursors"`
	Total   int     `json:"total"`
}

// SnapshotID identifies a playlist version, returned by playlist item changes.
type SnapshotID struct {
	SnapshotID string `json:"snapshot_id"`
}

// Markets wraps the available markets response.
type Markets struct {
	Markets []string `json:"markets"`
}

// Genres wraps the recommendation genre seeds response.
type Genres struct {
	Genres []string `json:"genres"`
}
