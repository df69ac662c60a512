package spotify

import (
	"context"
	"net/http"

	"github.com/desertthunder/spotify/model"
)

type trackEndpoint struct {
	ID     string `url:"-" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *trackEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/tracks/%s", e.ID)}
}

// TrackBuilder requests a single track.
type TrackBuilder struct {
	builder[*trackEndpoint, *model.Track]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *TrackBuilder) Market(market string) *TrackBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the track.
func (b *TrackBuilder) Get(ctx context.Context) (*model.Track, error) {
	return b.send(ctx)
}

type tracksEndpoint struct {
	IDs    string `url:"ids" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *tracksEndpoint) route() route {
	return route{method: http.MethodGet, path: "/tracks"}
}

// TracksBuilder requests several tracks.
type TracksBuilder struct {
	builder[*tracksEndpoint, model.Tracks]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *TracksBuilder) Market(market string) *TracksBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the tracks, in request order.
func (b *TracksBuilder) Get(ctx context.Context) ([]model.Track, error) {
	res, err := b.send(ctx)
	return res.Tracks, err
}

// SavedTracksBuilder requests a page of the tracks in the user's library.
type SavedTracksBuilder struct {
	builder[*savedItemsEndpoint, *model.Page[model.SavedTrack]]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *SavedTracksBuilder) Market(market string) *SavedTracksBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Limit caps the number of items returned.
func (b *SavedTracksBuilder) Limit(limit int) *SavedTracksBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *SavedTracksBuilder) Offset(offset int) *SavedTracksBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of the user's saved tracks.
func (b *SavedTracksBuilder) Get(ctx context.Context) (*model.Page[model.SavedTrack], error) {
	return b.send(ctx)
}

// Track returns a builder for the track with the given id.
func (c *Client[F]) Track(id string) *TrackBuilder {
	return &TrackBuilder{newBuilder[*trackEndpoint, *model.Track](c.s, &trackEndpoint{ID: id})}
}

// Tracks returns a builder for several tracks (at most 50 ids upstream).
func (c *Client[F]) Tracks(ids []string) *TracksBuilder {
	return &TracksBuilder{newBuilder[*tracksEndpoint, model.Tracks](c.s, &tracksEndpoint{IDs: idList(ids)})}
}

// GetTrackAudioFeatures returns the audio features of one track.
func (c *Client[F]) GetTrackAudioFeatures(ctx context.Context, id string) (*model.AudioFeatures, error) {
	return get[*model.AudioFeatures](ctx, c.s, pathf("/audio-features/%s", id), nil)
}

// GetTracksAudioFeatures returns audio features for several tracks. Unknown ids yield nil entries.
func (c *Client[F]) GetTracksAudioFeatures(ctx context.Context, ids []string) ([]*model.AudioFeatures, error) {
	res, err := get[model.AudioFeaturesList](ctx, c.s, "/audio-features", idsQuery(ids))
	return res.AudioFeatures, err
}

// GetTrackAudioAnalysis returns the low level audio analysis of a track.
func (c *Client[F]) GetTrackAudioAnalysis(ctx context.Context, id string) (*model.AudioAnalysis, error) {
	return get[*model.AudioAnalysis](ctx, c.s, pathf("/audio-analysis/%s", id), nil)
}

// SavedTracks returns a builder for the tracks saved in the user's library.
func (c *UserClient[F]) SavedTracks() *SavedTracksBuilder {
	e := &savedItemsEndpoint{path: "/me/tracks"}
	return &SavedTracksBuilder{newBuilder[*savedItemsEndpoint, *model.Page[model.SavedTrack]](c.s, e)}
}

// SaveTracks adds tracks to the user's library.
func (c *UserClient[F]) SaveTracks(ctx context.Context, ids []string) error {
	_, err := put[model.Nil](ctx, c.s, "/me/tracks", jsonBody(newIDsBody(ids)))
	return err
}

// RemoveSavedTracks removes tracks from the user's library.
func (c *UserClient[F]) RemoveSavedTracks(ctx context.Context, ids []string) error {
	_, err := del[model.Nil](ctx, c.s, "/me/tracks", jsonBody(newIDsBody(ids)))
	return err
}

// CheckSavedTracks reports, per id, whether the track is in the user's library.
func (c *UserClient[F]) CheckSavedTracks(ctx context.Context, ids []string) ([]bool, error) {
	return get[[]bool](ctx, c.s, "/me/tracks/contains", idsQuery(ids))
}
