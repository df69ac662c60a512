package spotify

import (
	"context"
	"net/http"

	"github.com/desertthunder/spotify/internal/shared"
	"github.com/desertthunder/spotify/model"
)

type searchEndpoint struct {
	Query           string `url:"q" json:"-"`
	Type            string `url:"type" json:"-"`
	Market          string `url:"market,omitempty" json:"-"`
	Limit           int    `url:"limit,omitempty" json:"-"`
	Offset          int    `url:"offset,omitempty" json:"-"`
	IncludeExternal string `url:"include_external,omitempty" json:"-"`
}

func (e *searchEndpoint) route() route {
	return route{method: http.MethodGet, path: "/search"}
}

// SearchBuilder runs a catalogue search.
type SearchBuilder struct {
	builder[*searchEndpoint, *model.SearchResults]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *SearchBuilder) Market(market string) *SearchBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Limit caps the results per item type.
func (b *SearchBuilder) Limit(limit int) *SearchBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *SearchBuilder) Offset(offset int) *SearchBuilder {
	b.e.Offset = offset
	return b
}

// IncludeExternalAudio marks externally hosted audio content as playable in the results.
func (b *SearchBuilder) IncludeExternalAudio(include bool) *SearchBuilder {
	b.e.IncludeExternal = ""
	if include {
		b.e.IncludeExternal = "audio"
	}
	return b
}

// Get sends the request and returns the results, one page per requested type.
func (b *SearchBuilder) Get(ctx context.Context) (*model.SearchResults, error) {
	return b.send(ctx)
}

// Search returns a builder searching for query across the given item types. Results for types that were not
// requested are nil.
func (c *Client[F]) Search(query string, types ...ItemType) *SearchBuilder {
	e := &searchEndpoint{Query: query, Type: shared.JoinList(types)}
	return &SearchBuilder{newBuilder[*searchEndpoint, *model.SearchResults](c.s, e)}
}
