package spotify

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/desertthunder/spotify/internal/shared"
	"github.com/desertthunder/spotify/model"
)

type playlistEndpoint struct {
	ID              string `url:"-" json:"-"`
	Market          string `url:"market,omitempty" json:"-"`
	Fields          string `url:"fields,omitempty" json:"-"`
	AdditionalTypes string `url:"additional_types,omitempty" json:"-"`
}

func (e *playlistEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/playlists/%s", e.ID)}
}

// PlaylistBuilder requests a playlist.
type PlaylistBuilder struct {
	builder[*playlistEndpoint, *model.Playlist]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *PlaylistBuilder) Market(market string) *PlaylistBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Fields narrows the response with upstream's field filter syntax, e.g. "items(added_by.id,track(name))".
// Fields absent from the filter decode as zero values.
func (b *PlaylistBuilder) Fields(fields string) *PlaylistBuilder {
	b.e.Fields = fields
	return b
}

// AdditionalTypes lists the item types besides tracks the caller can handle (ItemTrack and ItemEpisode).
func (b *PlaylistBuilder) AdditionalTypes(types ...ItemType) *PlaylistBuilder {
	b.e.AdditionalTypes = shared.JoinList(types)
	return b
}

// Get sends the request and returns the playlist.
func (b *PlaylistBuilder) Get(ctx context.Context) (*model.Playlist, error) {
	return b.send(ctx)
}

type playlistItemsEndpoint struct {
	ID              string `url:"-" json:"-"`
	Market          string `url:"market,omitempty" json:"-"`
	Fields          string `url:"fields,omitempty" json:"-"`
	Limit           int    `url:"limit,omitempty" json:"-"`
	Offset          int    `url:"offset,omitempty" json:"-"`
	AdditionalTypes string `url:"additional_types,omitempty" json:"-"`
}

func (e *playlistItemsEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/playlists/%s/tracks", e.ID)}
}

// PlaylistItemsBuilder requests a page of a playlist's items.
type PlaylistItemsBuilder struct {
	builder[*playlistItemsEndpoint, *model.Page[model.PlaylistItem]]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *PlaylistItemsBuilder) Market(market string) *PlaylistItemsBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Fields narrows the response with upstream's field filter syntax.
func (b *PlaylistItemsBuilder) Fields(fields string) *PlaylistItemsBuilder {
	b.e.Fields = fields
	return b
}

// Limit caps the number of items returned.
func (b *PlaylistItemsBuilder) Limit(limit int) *PlaylistItemsBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *PlaylistItemsBuilder) Offset(offset int) *PlaylistItemsBuilder {
	b.e.Offset = offset
	return b
}

// AdditionalTypes lists the item types besides tracks the caller can handle.
func (b *PlaylistItemsBuilder) AdditionalTypes(types ...ItemType) *PlaylistItemsBuilder {
	b.e.AdditionalTypes = shared.JoinList(types)
	return b
}

// Get sends the request and returns a page of the playlist's items.
func (b *PlaylistItemsBuilder) Get(ctx context.Context) (*model.Page[model.PlaylistItem], error) {
	return b.send(ctx)
}

// playlistsEndpoint lists playlists at path: the current user's or another user's.
type playlistsEndpoint struct {
	path   string
	Limit  int `url:"limit,omitempty" json:"-"`
	Offset int `url:"offset,omitempty" json:"-"`
}

func (e *playlistsEndpoint) route() route {
	return route{method: http.MethodGet, path: e.path}
}

// PlaylistsBuilder requests a page of a user's playlists.
type PlaylistsBuilder struct {
	builder[*playlistsEndpoint, *model.Page[model.SimplifiedPlaylist]]
}

// Limit caps the number of items returned.
func (b *PlaylistsBuilder) Limit(limit int) *PlaylistsBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *PlaylistsBuilder) Offset(offset int) *PlaylistsBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of playlists.
func (b *PlaylistsBuilder) Get(ctx context.Context) (*model.Page[model.SimplifiedPlaylist], error) {
	return b.send(ctx)
}

type featuredPlaylistsEndpoint struct {
	Country   string `url:"country,omitempty" json:"-"`
	Locale    string `url:"locale,omitempty" json:"-"`
	Timestamp string `url:"timestamp,omitempty" json:"-"`
	Limit     int    `url:"limit,omitempty" json:"-"`
	Offset    int    `url:"offset,omitempty" json:"-"`
}

func (e *featuredPlaylistsEndpoint) route() route {
	return route{method: http.MethodGet, path: "/browse/featured-playlists"}
}

// FeaturedPlaylistsBuilder requests the editorial featured playlists.
type FeaturedPlaylistsBuilder struct {
	builder[*featuredPlaylistsEndpoint, *model.FeaturedPlaylists]
}

// Country restricts the listing to a country, an ISO 3166-1 alpha-2 code.
func (b *FeaturedPlaylistsBuilder) Country(country string) *FeaturedPlaylistsBuilder {
	b.e.Country = marketCode(country)
	return b
}

// Locale selects the response language, e.g. "es_MX".
func (b *FeaturedPlaylistsBuilder) Locale(locale string) *FeaturedPlaylistsBuilder {
	b.e.Locale = locale
	return b
}

// Timestamp requests the playlists featured at t, sent as an ISO 8601 UTC timestamp.
func (b *FeaturedPlaylistsBuilder) Timestamp(t time.Time) *FeaturedPlaylistsBuilder {
	b.e.Timestamp = isoTimestamp(t)
	return b
}

// Limit caps the number of items returned.
func (b *FeaturedPlaylistsBuilder) Limit(limit int) *FeaturedPlaylistsBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *FeaturedPlaylistsBuilder) Offset(offset int) *FeaturedPlaylistsBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns the featured playlists and their message.
func (b *FeaturedPlaylistsBuilder) Get(ctx context.Context) (*model.FeaturedPlaylists, error) {
	return b.send(ctx)
}

type categoryPlaylistsEndpoint struct {
	ID      string `url:"-" json:"-"`
	Country string `url:"country,omitempty" json:"-"`
	Limit   int    `url:"limit,omitempty" json:"-"`
	Offset  int    `url:"offset,omitempty" json:"-"`
}

func (e *categoryPlaylistsEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/browse/categories/%s/playlists", e.ID)}
}

// CategoryPlaylistsBuilder requests the playlists tagged with a browse category.
type CategoryPlaylistsBuilder struct {
	builder[*categoryPlaylistsEndpoint, *model.FeaturedPlaylists]
}

// Country restricts the listing to a country, an ISO 3166-1 alpha-2 code.
func (b *CategoryPlaylistsBuilder) Country(country string) *CategoryPlaylistsBuilder {
	b.e.Country = marketCode(country)
	return b
}

// Limit caps the number of items returned.
func (b *CategoryPlaylistsBuilder) Limit(limit int) *CategoryPlaylistsBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *CategoryPlaylistsBuilder) Offset(offset int) *CategoryPlaylistsBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns the category's playlists.
func (b *CategoryPlaylistsBuilder) Get(ctx context.Context) (*model.FeaturedPlaylists, error) {
	return b.send(ctx)
}

type changePlaylistDetailsEndpoint struct {
	ID            string  `url:"-" json:"-"`
	Name          string  `url:"-" json:"name,omitempty"`
	Public        *bool   `url:"-" json:"public,omitempty"`
	Collaborative *bool   `url:"-" json:"collaborative,omitempty"`
	Description   *string `url:"-" json:"description,omitempty"`
}

func (e *changePlaylistDetailsEndpoint) route() route {
	return route{method: http.MethodPut, path: pathf("/playlists/%s", e.ID), body: true}
}

// ChangePlaylistDetailsBuilder edits a playlist's name, visibility and description. Unset fields keep their
// current value.
type ChangePlaylistDetailsBuilder struct {
	builder[*changePlaylistDetailsEndpoint, model.Nil]
}

// Name renames the playlist.
func (b *ChangePlaylistDetailsBuilder) Name(name string) *ChangePlaylistDetailsBuilder {
	b.e.Name = name
	return b
}

// Public shows or hides the playlist on the user's profile.
func (b *ChangePlaylistDetailsBuilder) Public(public bool) *ChangePlaylistDetailsBuilder {
	b.e.Public = ptr(public)
	return b
}

// Collaborative lets other users edit the playlist. Only private playlists can be collaborative.
func (b *ChangePlaylistDetailsBuilder) Collaborative(collaborative bool) *ChangePlaylistDetailsBuilder {
	b.e.Collaborative = ptr(collaborative)
	return b
}

// Description replaces the playlist description.
func (b *ChangePlaylistDetailsBuilder) Description(description string) *ChangePlaylistDetailsBuilder {
	b.e.Description = ptr(description)
	return b
}

// Send applies the changed details.
func (b *ChangePlaylistDetailsBuilder) Send(ctx context.Context) error {
	_, err := b.send(ctx)
	return err
}

type updatePlaylistItemsEndpoint struct {
	ID           string   `url:"-" json:"-"`
	RangeStart   int      `url:"-" json:"range_start"`
	InsertBefore int      `url:"-" json:"insert_before"`
	RangeLength  int      `url:"-" json:"range_length,omitempty"`
	SnapshotID   string   `url:"-" json:"snapshot_id,omitempty"`
	URIs         []string `url:"-" json:"uris,omitempty"`
}

func (e *updatePlaylistItemsEndpoint) route() route {
	return route{method: http.MethodPut, path: pathf("/playlists/%s/tracks", e.ID), body: true}
}

// UpdatePlaylistItemsBuilder reorders a playlist, or replaces its items when URIs is set.
type UpdatePlaylistItemsBuilder struct {
	builder[*updatePlaylistItemsEndpoint, model.SnapshotID]
}

// RangeLength is the number of items moved, starting at the range start. Upstream defaults to 1.
func (b *UpdatePlaylistItemsBuilder) RangeLength(n int) *UpdatePlaylistItemsBuilder {
	b.e.RangeLength = n
	return b
}

// SnapshotID applies the change to the given playlist version.
func (b *UpdatePlaylistItemsBuilder) SnapshotID(id string) *UpdatePlaylistItemsBuilder {
	b.e.SnapshotID = id
	return b
}

// URIs replaces the playlist's items with the given ones.
func (b *UpdatePlaylistItemsBuilder) URIs(uris ...string) *UpdatePlaylistItemsBuilder {
	b.e.URIs = uris
	return b
}

// Send applies the update and returns the playlist's new snapshot id.
func (b *UpdatePlaylistItemsBuilder) Send(ctx context.Context) (string, error) {
	res, err := b.send(ctx)
	return res.SnapshotID, err
}

type addPlaylistItemsEndpoint struct {
	ID       string   `url:"-" json:"-"`
	URIs     []string `url:"-" json:"uris"`
	Position *int     `url:"-" json:"position,omitempty"`
}

func (e *addPlaylistItemsEndpoint) route() route {
	return route{method: http.MethodPost, path: pathf("/playlists/%s/tracks", e.ID), body: true}
}

// AddPlaylistItemsBuilder appends items to a playlist.
type AddPlaylistItemsBuilder struct {
	builder[*addPlaylistItemsEndpoint, model.SnapshotID]
}

// Position inserts the items at a zero based index instead of appending them.
func (b *AddPlaylistItemsBuilder) Position(position int) *AddPlaylistItemsBuilder {
	b.e.Position = ptr(position)
	return b
}

// Send adds the items and returns the playlist's new snapshot id.
func (b *AddPlaylistItemsBuilder) Send(ctx context.Context) (string, error) {
	res, err := b.send(ctx)
	return res.SnapshotID, err
}

type playlistItemURI struct {
	URI string `json:"uri"`
}

type removePlaylistItemsEndpoint struct {
	ID         string            `url:"-" json:"-"`
	Tracks     []playlistItemURI `url:"-" json:"tracks"`
	SnapshotID string            `url:"-" json:"snapshot_id,omitempty"`
}

func (e *removePlaylistItemsEndpoint) route() route {
	return route{method: http.MethodDelete, path: pathf("/playlists/%s/tracks", e.ID), body: true}
}

// RemovePlaylistItemsBuilder removes every occurrence of the given items from a playlist.
type RemovePlaylistItemsBuilder struct {
	builder[*removePlaylistItemsEndpoint, model.SnapshotID]
}

// SnapshotID applies the change to the given playlist version.
func (b *RemovePlaylistItemsBuilder) SnapshotID(id string) *RemovePlaylistItemsBuilder {
	b.e.SnapshotID = id
	return b
}

// Send removes the items and returns the playlist's new snapshot id.
func (b *RemovePlaylistItemsBuilder) Send(ctx context.Context) (string, error) {
	res, err := b.send(ctx)
	return res.SnapshotID, err
}

type createPlaylistEndpoint struct {
	UserID        string `url:"-" json:"-"`
	Name          string `url:"-" json:"name"`
	Public        *bool  `url:"-" json:"public,omitempty"`
	Collaborative *bool  `url:"-" json:"collaborative,omitempty"`
	Description   string `url:"-" json:"description,omitempty"`
}

func (e *createPlaylistEndpoint) route() route {
	return route{method: http.MethodPost, path: pathf("/users/%s/playlists", e.UserID), body: true}
}

// CreatePlaylistBuilder creates a playlist owned by a user.
type CreatePlaylistBuilder struct {
	builder[*createPlaylistEndpoint, *model.Playlist]
}

// Public lists the playlist on the user's profile. Upstream defaults to true.
func (b *CreatePlaylistBuilder) Public(public bool) *CreatePlaylistBuilder {
	b.e.Public = ptr(public)
	return b
}

// Collaborative lets other users edit the playlist.
func (b *CreatePlaylistBuilder) Collaborative(collaborative bool) *CreatePlaylistBuilder {
	b.e.Collaborative = ptr(collaborative)
	return b
}

// Description sets the playlist description.
func (b *CreatePlaylistBuilder) Description(description string) *CreatePlaylistBuilder {
	b.e.Description = description
	return b
}

// Send creates the playlist and returns it.
func (b *CreatePlaylistBuilder) Send(ctx context.Context) (*model.Playlist, error) {
	return b.send(ctx)
}

// Playlist returns a builder for the playlist with the given id.
func (c *Client[F]) Playlist(id string) *PlaylistBuilder {
	return &PlaylistBuilder{newBuilder[*playlistEndpoint, *model.Playlist](c.s, &playlistEndpoint{ID: id})}
}

// PlaylistItems returns a builder for the items of a playlist.
func (c *Client[F]) PlaylistItems(id string) *PlaylistItemsBuilder {
	e := &playlistItemsEndpoint{ID: id}
	return &PlaylistItemsBuilder{newBuilder[*playlistItemsEndpoint, *model.Page[model.PlaylistItem]](c.s, e)}
}

// UserPlaylists returns a builder for the public playlists of a user.
func (c *Client[F]) UserPlaylists(userID string) *PlaylistsBuilder {
	e := &playlistsEndpoint{path: pathf("/users/%s/playlists", userID)}
	return &PlaylistsBuilder{newBuilder[*playlistsEndpoint, *model.Page[model.SimplifiedPlaylist]](c.s, e)}
}

// FeaturedPlaylists returns a builder for the featured playlists listing.
func (c *Client[F]) FeaturedPlaylists() *FeaturedPlaylistsBuilder {
	e := &featuredPlaylistsEndpoint{}
	return &FeaturedPlaylistsBuilder{newBuilder[*featuredPlaylistsEndpoint, *model.FeaturedPlaylists](c.s, e)}
}

// CategoryPlaylists returns a builder for the playlists of a browse category.
func (c *Client[F]) CategoryPlaylists(categoryID string) *CategoryPlaylistsBuilder {
	e := &categoryPlaylistsEndpoint{ID: categoryID}
	return &CategoryPlaylistsBuilder{newBuilder[*categoryPlaylistsEndpoint, *model.FeaturedPlaylists](c.s, e)}
}

// GetPlaylistImage returns the cover images of a playlist.
func (c *Client[F]) GetPlaylistImage(ctx context.Context, id string) ([]model.Image, error) {
	return get[[]model.Image](ctx, c.s, pathf("/playlists/%s/images", id), nil)
}

// CurrentUserPlaylists returns a builder for the playlists the user owns or follows.
func (c *UserClient[F]) CurrentUserPlaylists() *PlaylistsBuilder {
	e := &playlistsEndpoint{path: "/me/playlists"}
	return &PlaylistsBuilder{newBuilder[*playlistsEndpoint, *model.Page[model.SimplifiedPlaylist]](c.s, e)}
}

// ChangePlaylistDetails returns a builder editing the playlist with the given id.
func (c *UserClient[F]) ChangePlaylistDetails(id string) *ChangePlaylistDetailsBuilder {
	e := &changePlaylistDetailsEndpoint{ID: id}
	return &ChangePlaylistDetailsBuilder{newBuilder[*changePlaylistDetailsEndpoint, model.Nil](c.s, e)}
}

// UpdatePlaylistItems returns a builder moving the items starting at rangeStart to before insertBefore.
func (c *UserClient[F]) UpdatePlaylistItems(id string, rangeStart, insertBefore int) *UpdatePlaylistItemsBuilder {
	e := &updatePlaylistItemsEndpoint{ID: id, RangeStart: rangeStart, InsertBefore: insertBefore}
	return &UpdatePlaylistItemsBuilder{newBuilder[*updatePlaylistItemsEndpoint, model.SnapshotID](c.s, e)}
}

// AddItemsToPlaylist returns a builder adding track or episode URIs to a playlist.
func (c *UserClient[F]) AddItemsToPlaylist(id string, uris []string) *AddPlaylistItemsBuilder {
	if uris == nil {
		uris = []string{}
	}
	e := &addPlaylistItemsEndpoint{ID: id, URIs: uris}
	return &AddPlaylistItemsBuilder{newBuilder[*addPlaylistItemsEndpoint, model.SnapshotID](c.s, e)}
}

// RemovePlaylistItems returns a builder removing track or episode URIs from a playlist.
func (c *UserClient[F]) RemovePlaylistItems(id string, uris []string) *RemovePlaylistItemsBuilder {
	tracks := make([]playlistItemURI, len(uris))
	for i, uri := range uris {
		tracks[i] = playlistItemURI{URI: uri}
	}
	e := &removePlaylistItemsEndpoint{ID: id, Tracks: tracks}
	return &RemovePlaylistItemsBuilder{newBuilder[*removePlaylistItemsEndpoint, model.SnapshotID](c.s, e)}
}

// CreatePlaylist returns a builder creating a playlist named name for the given user.
func (c *UserClient[F]) CreatePlaylist(userID, name string) *CreatePlaylistBuilder {
	e := &createPlaylistEndpoint{UserID: userID, Name: name}
	return &CreatePlaylistBuilder{newBuilder[*createPlaylistEndpoint, *model.Playlist](c.s, e)}
}

// AddPlaylistImage replaces a playlist's cover with a JPEG image. The raw bytes are base64 encoded for upload;
// upstream limits the encoded payload to 256 KB.
func (c *UserClient[F]) AddPlaylistImage(ctx context.Context, id string, image []byte) error {
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(image)))
	base64.StdEncoding.Encode(encoded, image)

	_, err := put[model.Nil](ctx, c.s, pathf("/playlists/%s/images", id), fileBody(encoded, "image/jpeg"))
	return err
}
