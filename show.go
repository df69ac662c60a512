package spotify

import (
	"context"
	"net/http"

	"github.com/desertthunder/spotify/model"
)

type showEndpoint struct {
	ID     string `url:"-" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *showEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/shows/%s", e.ID)}
}

// ShowBuilder requests a single show.
type ShowBuilder struct {
	builder[*showEndpoint, *model.Show]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *ShowBuilder) Market(market string) *ShowBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the show.
func (b *ShowBuilder) Get(ctx context.Context) (*model.Show, error) {
	return b.send(ctx)
}

type showsEndpoint struct {
	IDs    string `url:"ids" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *showsEndpoint) route() route {
	return route{method: http.MethodGet, path: "/shows"}
}

// ShowsBuilder requests several shows.
type ShowsBuilder struct {
	builder[*showsEndpoint, model.Shows]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *ShowsBuilder) Market(market string) *ShowsBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the shows, in request order.
func (b *ShowsBuilder) Get(ctx context.Context) ([]model.SimplifiedShow, error) {
	res, err := b.send(ctx)
	return res.Shows, err
}

type showEpisodesEndpoint struct {
	ID     string `url:"-" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
	Limit  int    `url:"limit,omitempty" json:"-"`
	Offset int    `url:"offset,omitempty" json:"-"`
}

func (e *showEpisodesEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/shows/%s/episodes", e.ID)}
}

// ShowEpisodesBuilder requests a page of a show's episodes.
type ShowEpisodesBuilder struct {
	builder[*showEpisodesEndpoint, *model.Page[model.SimplifiedEpisode]]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *ShowEpisodesBuilder) Market(market string) *ShowEpisodesBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Limit caps the number of items returned.
func (b *ShowEpisodesBuilder) Limit(limit int) *ShowEpisodesBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *ShowEpisodesBuilder) Offset(offset int) *ShowEpisodesBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of the show's episodes.
func (b *ShowEpisodesBuilder) Get(ctx context.Context) (*model.Page[model.SimplifiedEpisode], error) {
	return b.send(ctx)
}

type episodeEndpoint struct {
	ID     string `url:"-" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *episodeEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/episodes/%s", e.ID)}
}

// EpisodeBuilder requests a single episode.
type EpisodeBuilder struct {
	builder[*episodeEndpoint, *model.Episode]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *EpisodeBuilder) Market(market string) *EpisodeBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the episode.
func (b *EpisodeBuilder) Get(ctx context.Context) (*model.Episode, error) {
	return b.send(ctx)
}

type episodesEndpoint struct {
	IDs    string `url:"ids" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *episodesEndpoint) route() route {
	return route{method: http.MethodGet, path: "/episodes"}
}

// EpisodesBuilder requests several episodes.
type EpisodesBuilder struct {
	builder[*episodesEndpoint, model.Episodes]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *EpisodesBuilder) Market(market string) *EpisodesBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the episodes, in request order.
func (b *EpisodesBuilder) Get(ctx context.Context) ([]model.Episode, error) {
	res, err := b.send(ctx)
	return res.Episodes, err
}

// savedItemsEndpoint lists a library collection under /me. Saved shows and episodes share it.
type savedItemsEndpoint struct {
	path   string
	Market string `url:"market,omitempty" json:"-"`
	Limit  int    `url:"limit,omitempty" json:"-"`
	Offset int    `url:"offset,omitempty" json:"-"`
}

func (e *savedItemsEndpoint) route() route {
	return route{method: http.MethodGet, path: e.path}
}

// SavedShowsBuilder requests a page of the shows the user follows.
type SavedShowsBuilder struct {
	builder[*savedItemsEndpoint, *model.Page[model.SavedShow]]
}

// Limit caps the number of items returned.
func (b *SavedShowsBuilder) Limit(limit int) *SavedShowsBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *SavedShowsBuilder) Offset(offset int) *SavedShowsBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of the user's saved shows.
func (b *SavedShowsBuilder) Get(ctx context.Context) (*model.Page[model.SavedShow], error) {
	return b.send(ctx)
}

// SavedEpisodesBuilder requests a page of the episodes in the user's library.
type SavedEpisodesBuilder struct {
	builder[*savedItemsEndpoint, *model.Page[model.SavedEpisode]]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *SavedEpisodesBuilder) Market(market string) *SavedEpisodesBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Limit caps the number of items returned.
func (b *SavedEpisodesBuilder) Limit(limit int) *SavedEpisodesBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *SavedEpisodesBuilder) Offset(offset int) *SavedEpisodesBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of the user's saved episodes.
func (b *SavedEpisodesBuilder) Get(ctx context.Context) (*model.Page[model.SavedEpisode], error) {
	return b.send(ctx)
}

// Show returns a builder for the show with the given id.
func (c *Client[F]) Show(id string) *ShowBuilder {
	return &ShowBuilder{newBuilder[*showEndpoint, *model.Show](c.s, &showEndpoint{ID: id})}
}

// Shows returns a builder for several shows.
func (c *Client[F]) Shows(ids []string) *ShowsBuilder {
	return &ShowsBuilder{newBuilder[*showsEndpoint, model.Shows](c.s, &showsEndpoint{IDs: idList(ids)})}
}

// ShowEpisodes returns a builder for the episodes of a show.
func (c *Client[F]) ShowEpisodes(showID string) *ShowEpisodesBuilder {
	e := &showEpisodesEndpoint{ID: showID}
	return &ShowEpisodesBuilder{newBuilder[*showEpisodesEndpoint, *model.Page[model.SimplifiedEpisode]](c.s, e)}
}

// Episode returns a builder for the episode with the given id.
func (c *Client[F]) Episode(id string) *EpisodeBuilder {
	return &EpisodeBuilder{newBuilder[*episodeEndpoint, *model.Episode](c.s, &episodeEndpoint{ID: id})}
}

// Episodes returns a builder for several episodes.
func (c *Client[F]) Episodes(ids []string) *EpisodesBuilder {
	return &EpisodesBuilder{newBuilder[*episodesEndpoint, model.Episodes](c.s, &episodesEndpoint{IDs: idList(ids)})}
}

// SavedShows returns a builder for the shows the user follows.
func (c *UserClient[F]) SavedShows() *SavedShowsBuilder {
	e := &savedItemsEndpoint{path: "/me/shows"}
	return &SavedShowsBuilder{newBuilder[*savedItemsEndpoint, *model.Page[model.SavedShow]](c.s, e)}
}

// SaveShows adds shows to the user's library.
func (c *UserClient[F]) SaveShows(ctx context.Context, ids []string) error {
	_, err := put[model.Nil](ctx, c.s, "/me/shows", jsonBody(newIDsBody(ids)))
	return err
}

// RemoveSavedShows removes shows from the user's library.
func (c *UserClient[F]) RemoveSavedShows(ctx context.Context, ids []string) error {
	_, err := del[model.Nil](ctx, c.s, "/me/shows", jsonBody(newIDsBody(ids)))
	return err
}

// CheckSavedShows reports, per id, whether the show is in the user's library.
func (c *UserClient[F]) CheckSavedShows(ctx context.Context, ids []string) ([]bool, error) {
	return get[[]bool](ctx, c.s, "/me/shows/contains", idsQuery(ids))
}

// SavedEpisodes returns a builder for the episodes saved in the user's library.
func (c *UserClient[F]) SavedEpisodes() *SavedEpisodesBuilder {
	e := &savedItemsEndpoint{path: "/me/episodes"}
	return &SavedEpisodesBuilder{newBuilder[*savedItemsEndpoint, *model.Page[model.SavedEpisode]](c.s, e)}
}

// SaveEpisodes adds episodes to the user's library.
func (c *UserClient[F]) SaveEpisodes(ctx context.Context, ids []string) error {
	_, err := put[model.Nil](ctx, c.s, "/me/episodes", jsonBody(newIDsBody(ids)))
	return err
}

// RemoveSavedEpisodes removes episodes from the user's library.
func (c *UserClient[F]) RemoveSavedEpisodes(ctx context.Context, ids []string) error {
	_, err := del[model.Nil](ctx, c.s, "/me/episodes", jsonBody(newIDsBody(ids)))
	return err
}

// CheckSavedEpisodes reports, per id, whether the episode is in the user's library.
func (c *UserClient[F]) CheckSavedEpisodes(ctx context.Context, ids []string) ([]bool, error) {
	return get[[]bool](ctx, c.s, "/me/episodes/contains", idsQuery(ids))
}
