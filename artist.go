package spotify

import (
	"context"
	"net/http"
	"net/url"

	"github.com/desertthunder/spotify/internal/shared"
	"github.com/desertthunder/spotify/model"
)

type artistEndpoint struct {
	ID string `url:"-" json:"-"`
}

func (e *artistEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/artists/%s", e.ID)}
}

// ArtistBuilder requests an artist. Besides the artist itself it reaches the artist's albums, top tracks
// and related artists.
type ArtistBuilder struct {
	builder[*artistEndpoint, *model.Artist]
}

// Get sends the request and returns the artist.
func (b *ArtistBuilder) Get(ctx context.Context) (*model.Artist, error) {
	return b.send(ctx)
}

// Albums returns a builder for the artist's albums.
func (b *ArtistBuilder) Albums() *ArtistAlbumsBuilder {
	return newArtistAlbums(b.s, b.e.ID)
}

// TopTracks returns the artist's top tracks in market.
func (b *ArtistBuilder) TopTracks(ctx context.Context, market string) ([]model.Track, error) {
	return artistTopTracks(ctx, b.s, b.e.ID, market)
}

// RelatedArtists returns artists similar to this one.
func (b *ArtistBuilder) RelatedArtists(ctx context.Context) ([]model.Artist, error) {
	return relatedArtists(ctx, b.s, b.e.ID)
}

type artistAlbumsEndpoint struct {
	ID            string `url:"-" json:"-"`
	IncludeGroups string `url:"include_groups,omitempty" json:"-"`
	Market        string `url:"market,omitempty" json:"-"`
	Limit         int    `url:"limit,omitempty" json:"-"`
	Offset        int    `url:"offset,omitempty" json:"-"`
}

func (e *artistAlbumsEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/artists/%s/albums", e.ID)}
}

// ArtistAlbumsBuilder requests a page of an artist's albums.
type ArtistAlbumsBuilder struct {
	builder[*artistAlbumsEndpoint, *model.Page[model.SimplifiedAlbum]]
}

func newArtistAlbums(s *session, id string) *ArtistAlbumsBuilder {
	return &ArtistAlbumsBuilder{newBuilder[*artistAlbumsEndpoint, *model.Page[model.SimplifiedAlbum]](s, &artistAlbumsEndpoint{ID: id})}
}

// IncludeGroups filters the albums by group.
func (b *ArtistAlbumsBuilder) IncludeGroups(groups ...AlbumGroup) *ArtistAlbumsBuilder {
	b.e.IncludeGroups = shared.JoinList(groups)
	return b
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *ArtistAlbumsBuilder) Market(market string) *ArtistAlbumsBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Limit caps the number of items returned.
func (b *ArtistAlbumsBuilder) Limit(limit int) *ArtistAlbumsBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *ArtistAlbumsBuilder) Offset(offset int) *ArtistAlbumsBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of the artist's albums.
func (b *ArtistAlbumsBuilder) Get(ctx context.Context) (*model.Page[model.SimplifiedAlbum], error) {
	return b.send(ctx)
}

func artistTopTracks(ctx context.Context, s *session, id, market string) ([]model.Track, error) {
	var query url.Values
	if market != "" {
		query = url.Values{"market": {marketCode(market)}}
	}
	res, err := get[model.Tracks](ctx, s, pathf("/artists/%s/top-tracks", id), query)
	return res.Tracks, err
}

func relatedArtists(ctx context.Context, s *session, id string) ([]model.Artist, error) {
	res, err := get[model.Artists](ctx, s, pathf("/artists/%s/related-artists", id), nil)
	return res.Artists, err
}

// Artist returns a builder for the artist with the given id.
func (c *Client[F]) Artist(id string) *ArtistBuilder {
	return &ArtistBuilder{newBuilder[*artistEndpoint, *model.Artist](c.s, &artistEndpoint{ID: id})}
}

// GetArtists returns several artists.
func (c *Client[F]) GetArtists(ctx context.Context, ids []string) ([]model.Artist, error) {
	res, err := get[model.Artists](ctx, c.s, "/artists", idsQuery(ids))
	return res.Artists, err
}

// ArtistAlbums returns a builder for an artist's albums.
func (c *Client[F]) ArtistAlbums(artistID string) *ArtistAlbumsBuilder {
	return newArtistAlbums(c.s, artistID)
}

// ArtistTopTracks returns an artist's top tracks in market. An empty market is left to upstream.
func (c *Client[F]) ArtistTopTracks(ctx context.Context, artistID, market string) ([]model.Track, error) {
	return artistTopTracks(ctx, c.s, artistID, market)
}

// RelatedArtists returns artists similar to the given one.
func (c *Client[F]) RelatedArtists(ctx context.Context, artistID string) ([]model.Artist, error) {
	return relatedArtists(ctx, c.s, artistID)
}
