package spotify

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/spotify/internal/shared"
)

// marketCode normalises an ISO 3166-1 alpha-2 country code. "from_token" is passed through unchanged.
func marketCode(m string) string {
	if m == "from_token" {
		return m
	}
	return strings.ToUpper(m)
}

// idList joins ids into the single comma separated value of an ids parameter. An empty list yields "".
func idList(ids []string) string {
	return shared.JoinList(ids)
}

func isoTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func ptr[T any](v T) *T {
	return &v
}

// ItemType selects the kinds of items a search returns.
type ItemType string

const (
	ItemAlbum     ItemType = "album"
	ItemArtist    ItemType = "artist"
	ItemPlaylist  ItemType = "playlist"
	ItemTrack     ItemType = "track"
	ItemShow      ItemType = "show"
	ItemEpisode   ItemType = "episode"
	ItemAudiobook ItemType = "audiobook"
)

// AlbumGroup filters the albums listed for an artist.
type AlbumGroup string

const (
	GroupAlbum       AlbumGroup = "album"
	GroupSingle      AlbumGroup = "single"
	GroupAppearsOn   AlbumGroup = "appears_on"
	GroupCompilation AlbumGroup = "compilation"
)

// TimeRange is the period a user's top items are computed over.
type TimeRange string

const (
	LongTerm   TimeRange = "long_term"
	MediumTerm TimeRange = "medium_term"
	ShortTerm  TimeRange = "short_term"
)

// RepeatMode is the player repeat state.
type RepeatMode string

const (
	RepeatTrack   RepeatMode = "track"
	RepeatContext RepeatMode = "context"
	RepeatOff     RepeatMode = "off"
)

// userItemType is the kind of top items requested.
type userItemType string

const (
	topArtists userItemType = "artists"
	topTracks  userItemType = "tracks"
)

// followType is the kind of entity followed.
type followType string

const (
	followArtist followType = "artist"
	followUser   followType = "user"
)

// idsBody is the JSON body of the library mutation endpoints.
type idsBody struct {
	IDs []string `json:"ids"`
}

func newIDsBody(ids []string) idsBody {
	if ids == nil {
		ids = []string{}
	}
	return idsBody{IDs: ids}
}

func idsQuery(ids []string) url.Values {
	return url.Values{"ids": {idList(ids)}}
}
