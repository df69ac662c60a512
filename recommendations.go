package spotify

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/desertthunder/spotify/model"
)

// SeedKind is the kind of seed a recommendations request is built from. It is fixed when the builder is created.
type SeedKind interface {
	seedParam() string
}

type (
	ArtistSeeds struct{}
	TrackSeeds  struct{}
	GenreSeeds  struct{}
)

func (ArtistSeeds) seedParam() string { return "seed_artists" }
func (TrackSeeds) seedParam() string  { return "seed_tracks" }
func (GenreSeeds) seedParam() string  { return "seed_genres" }

// Feature is a tunable track attribute of the recommendations endpoint.
type Feature string

const (
	Acousticness     Feature = "acousticness"
	Danceability     Feature = "danceability"
	DurationMS       Feature = "duration_ms"
	Energy           Feature = "energy"
	Instrumentalness Feature = "instrumentalness"
	Key              Feature = "key"
	Liveness         Feature = "liveness"
	Loudness         Feature = "loudness"
	Mode             Feature = "mode"
	Popularity       Feature = "popularity"
	Speechiness      Feature = "speechiness"
	Tempo            Feature = "tempo"
	TimeSignature    Feature = "time_signature"
	Valence          Feature = "valence"
)

type recommendationsEndpoint struct {
	seedParam string
	seeds     string
	tunables  map[string]float64
	Limit     int    `url:"limit,omitempty" json:"-"`
	Market    string `url:"market,omitempty" json:"-"`
}

func (e *recommendationsEndpoint) route() route {
	return route{method: http.MethodGet, path: "/recommendations"}
}

func (e *recommendationsEndpoint) appendQuery(q url.Values) {
	q.Set(e.seedParam, e.seeds)
	for k, v := range e.tunables {
		q.Set(k, strconv.FormatFloat(v, 'f', -1, 64))
	}
}

func (e *recommendationsEndpoint) tune(prefix string, f Feature, v float64) {
	if e.tunables == nil {
		e.tunables = make(map[string]float64)
	}
	e.tunables[prefix+"_"+string(f)] = v
}

// RecommendationsBuilder requests track recommendations seeded by one kind of seed, S. Upstream accepts at most
// five seeds.
type RecommendationsBuilder[S SeedKind] struct {
	builder[*recommendationsEndpoint, *model.Recommendations]
}

func newRecommendations[S SeedKind](s *session, seeds []string) *RecommendationsBuilder[S] {
	var kind S
	e := &recommendationsEndpoint{seedParam: kind.seedParam(), seeds: idList(seeds)}
	return &RecommendationsBuilder[S]{newBuilder[*recommendationsEndpoint, *model.Recommendations](s, e)}
}

// Min sets a hard floor on a feature.
func (b *RecommendationsBuilder[S]) Min(f Feature, v float64) *RecommendationsBuilder[S] {
	b.e.tune("min", f, v)
	return b
}

// Max sets a hard ceiling on a feature.
func (b *RecommendationsBuilder[S]) Max(f Feature, v float64) *RecommendationsBuilder[S] {
	b.e.tune("max", f, v)
	return b
}

// Target sets the preferred value of a feature.
func (b *RecommendationsBuilder[S]) Target(f Feature, v float64) *RecommendationsBuilder[S] {
	b.e.tune("target", f, v)
	return b
}

// Limit caps the number of items returned.
func (b *RecommendationsBuilder[S]) Limit(limit int) *RecommendationsBuilder[S] {
	b.e.Limit = limit
	return b
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *RecommendationsBuilder[S]) Market(market string) *RecommendationsBuilder[S] {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the recommended tracks and the seeds they came from.
func (b *RecommendationsBuilder[S]) Get(ctx context.Context) (*model.Recommendations, error) {
	return b.send(ctx)
}

// RecommendationsByArtists returns a builder for recommendations seeded by artist ids.
func (c *Client[F]) RecommendationsByArtists(ids []string) *RecommendationsBuilder[ArtistSeeds] {
	return newRecommendations[ArtistSeeds](c.s, ids)
}

// RecommendationsByTracks returns a builder for recommendations seeded by track ids.
func (c *Client[F]) RecommendationsByTracks(ids []string) *RecommendationsBuilder[TrackSeeds] {
	return newRecommendations[TrackSeeds](c.s, ids)
}

// RecommendationsByGenres returns a builder for recommendations seeded by genres, as listed by GetGenreSeeds.
func (c *Client[F]) RecommendationsByGenres(genres []string) *RecommendationsBuilder[GenreSeeds] {
	return newRecommendations[GenreSeeds](c.s, genres)
}
