package spotify

import (
	"context"
	"net/http"

	"github.com/desertthunder/spotify/model"
)

type albumEndpoint struct {
	ID     string `url:"-" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *albumEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/albums/%s", e.ID)}
}

// AlbumBuilder requests a single album.
type AlbumBuilder struct {
	builder[*albumEndpoint, *model.Album]
}

// Market restricts the response to content available in the given market.
func (b *AlbumBuilder) Market(market string) *AlbumBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the album.
func (b *AlbumBuilder) Get(ctx context.Context) (*model.Album, error) {
	return b.send(ctx)
}

type albumsEndpoint struct {
	IDs    string `url:"ids" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *albumsEndpoint) route() route {
	return route{method: http.MethodGet, path: "/albums"}
}

// AlbumsBuilder requests several albums.
type AlbumsBuilder struct {
	builder[*albumsEndpoint, model.Albums]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *AlbumsBuilder) Market(market string) *AlbumsBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the albums, in request order.
func (b *AlbumsBuilder) Get(ctx context.Context) ([]model.Album, error) {
	res, err := b.send(ctx)
	return res.Albums, err
}

type albumTracksEndpoint struct {
	ID     string `url:"-" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
	Limit  int    `url:"limit,omitempty" json:"-"`
	Offset int    `url:"offset,omitempty" json:"-"`
}

func (e *albumTracksEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/albums/%s/tracks", e.ID)}
}

// AlbumTracksBuilder requests a page of an album's tracks.
type AlbumTracksBuilder struct {
	builder[*albumTracksEndpoint, *model.Page[model.SimplifiedTrack]]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *AlbumTracksBuilder) Market(market string) *AlbumTracksBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Limit caps the number of items returned.
func (b *AlbumTracksBuilder) Limit(limit int) *AlbumTracksBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *AlbumTracksBuilder) Offset(offset int) *AlbumTracksBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of the album's tracks.
func (b *AlbumTracksBuilder) Get(ctx context.Context) (*model.Page[model.SimplifiedTrack], error) {
	return b.send(ctx)
}

type newReleasesEndpoint struct {
	Country string `url:"country,omitempty" json:"-"`
	Limit   int    `url:"limit,omitempty" json:"-"`
	Offset  int    `url:"offset,omitempty" json:"-"`
}

func (e *newReleasesEndpoint) route() route {
	return route{method: http.MethodGet, path: "/browse/new-releases"}
}

// NewReleasesBuilder requests a page of new album releases.
type NewReleasesBuilder struct {
	builder[*newReleasesEndpoint, model.NewReleases]
}

// Country restricts the releases to one market.
func (b *NewReleasesBuilder) Country(country string) *NewReleasesBuilder {
	b.e.Country = marketCode(country)
	return b
}

// Limit caps the number of items returned.
func (b *NewReleasesBuilder) Limit(limit int) *NewReleasesBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *NewReleasesBuilder) Offset(offset int) *NewReleasesBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of new releases.
func (b *NewReleasesBuilder) Get(ctx context.Context) (*model.Page[model.SimplifiedAlbum], error) {
	res, err := b.send(ctx)
	if err != nil {
		return nil, err
	}
	return &res.Albums, nil
}

type savedAlbumsEndpoint struct {
	Market string `url:"market,omitempty" json:"-"`
	Limit  int    `url:"limit,omitempty" json:"-"`
	Offset int    `url:"offset,omitempty" json:"-"`
}

func (e *savedAlbumsEndpoint) route() route {
	return route{method: http.MethodGet, path: "/me/albums"}
}

// SavedAlbumsBuilder requests a page of the albums in the user's library.
type SavedAlbumsBuilder struct {
	builder[*savedAlbumsEndpoint, *model.Page[model.SavedAlbum]]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *SavedAlbumsBuilder) Market(market string) *SavedAlbumsBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Limit caps the number of items returned.
func (b *SavedAlbumsBuilder) Limit(limit int) *SavedAlbumsBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *SavedAlbumsBuilder) Offset(offset int) *SavedAlbumsBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of the user's saved albums.
func (b *SavedAlbumsBuilder) Get(ctx context.Context) (*model.Page[model.SavedAlbum], error) {
	return b.send(ctx)
}

// Album returns a builder for the album with the given id.
func (c *Client[F]) Album(id string) *AlbumBuilder {
	return &AlbumBuilder{newBuilder[*albumEndpoint, *model.Album](c.s, &albumEndpoint{ID: id})}
}

// Albums returns a builder for several albums (at most 20 ids upstream).
func (c *Client[F]) Albums(ids []string) *AlbumsBuilder {
	return &AlbumsBuilder{newBuilder[*albumsEndpoint, model.Albums](c.s, &albumsEndpoint{IDs: idList(ids)})}
}

// AlbumTracks returns a builder for the tracks of an album.
func (c *Client[F]) AlbumTracks(albumID string) *AlbumTracksBuilder {
	return &AlbumTracksBuilder{newBuilder[*albumTracksEndpoint, *model.Page[model.SimplifiedTrack]](c.s, &albumTracksEndpoint{ID: albumID})}
}

// NewReleases returns a builder for the new releases listing.
func (c *Client[F]) NewReleases() *NewReleasesBuilder {
	return &NewReleasesBuilder{newBuilder[*newReleasesEndpoint, model.NewReleases](c.s, &newReleasesEndpoint{})}
}

// SavedAlbums returns a builder for the albums saved in the user's library.
func (c *UserClient[F]) SavedAlbums() *SavedAlbumsBuilder {
	return &SavedAlbumsBuilder{newBuilder[*savedAlbumsEndpoint, *model.Page[model.SavedAlbum]](c.s, &savedAlbumsEndpoint{})}
}

// SaveAlbums adds albums to the user's library.
func (c *UserClient[F]) SaveAlbums(ctx context.Context, ids []string) error {
	_, err := put[model.Nil](ctx, c.s, "/me/albums", jsonBody(newIDsBody(ids)))
	return err
}

// RemoveSavedAlbums removes albums from the user's library.
func (c *UserClient[F]) RemoveSavedAlbums(ctx context.Context, ids []string) error {
	_, err := del[model.Nil](ctx, c.s, "/me/albums", jsonBody(newIDsBody(ids)))
	return err
}

// CheckSavedAlbums reports, per id, whether the album is in the user's library.
func (c *UserClient[F]) CheckSavedAlbums(ctx context.Context, ids []string) ([]bool, error) {
	return get[[]bool](ctx, c.s, "/me/albums/contains", idsQuery(ids))
}
