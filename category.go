package spotify

import (
	"context"
	"net/http"

	"github.com/desertthunder/spotify/model"
)

type browseCategoryEndpoint struct {
	ID      string `url:"-" json:"-"`
	Country string `url:"country,omitempty" json:"-"`
	Locale  string `url:"locale,omitempty" json:"-"`
}

func (e *browseCategoryEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/browse/categories/%s", e.ID)}
}

// BrowseCategoryBuilder requests a single browse category.
type BrowseCategoryBuilder struct {
	builder[*browseCategoryEndpoint, *model.Category]
}

// Country restricts the listing to a country, an ISO 3166-1 alpha-2 code.
func (b *BrowseCategoryBuilder) Country(country string) *BrowseCategoryBuilder {
	b.e.Country = marketCode(country)
	return b
}

// Locale selects the language of the category name, e.g. "es_MX".
func (b *BrowseCategoryBuilder) Locale(locale string) *BrowseCategoryBuilder {
	b.e.Locale = locale
	return b
}

// Get sends the request and returns the category.
func (b *BrowseCategoryBuilder) Get(ctx context.Context) (*model.Category, error) {
	return b.send(ctx)
}

type browseCategoriesEndpoint struct {
	Country string `url:"country,omitempty" json:"-"`
	Locale  string `url:"locale,omitempty" json:"-"`
	Limit   int    `url:"limit,omitempty" json:"-"`
	Offset  int    `url:"offset,omitempty" json:"-"`
}

func (e *browseCategoriesEndpoint) route() route {
	return route{method: http.MethodGet, path: "/browse/categories"}
}

// BrowseCategoriesBuilder requests a page of browse categories.
type BrowseCategoriesBuilder struct {
	builder[*browseCategoriesEndpoint, model.Categories]
}

// Country restricts the listing to a country, an ISO 3166-1 alpha-2 code.
func (b *BrowseCategoriesBuilder) Country(country string) *BrowseCategoriesBuilder {
	b.e.Country = marketCode(country)
	return b
}

// Locale selects the response language, e.g. "es_MX".
func (b *BrowseCategoriesBuilder) Locale(locale string) *BrowseCategoriesBuilder {
	b.e.Locale = locale
	return b
}

// Limit caps the number of items returned.
func (b *BrowseCategoriesBuilder) Limit(limit int) *BrowseCategoriesBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *BrowseCategoriesBuilder) Offset(offset int) *BrowseCategoriesBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of browse categories.
func (b *BrowseCategoriesBuilder) Get(ctx context.Context) (*model.Page[model.Category], error) {
	res, err := b.send(ctx)
	if err != nil {
		return nil, err
	}
	return &res.Categories, nil
}

// BrowseCategory returns a builder for the category with the given id.
func (c *Client[F]) BrowseCategory(id string) *BrowseCategoryBuilder {
	return &BrowseCategoryBuilder{newBuilder[*browseCategoryEndpoint, *model.Category](c.s, &browseCategoryEndpoint{ID: id})}
}

// BrowseCategories returns a builder for the browse categories listing.
func (c *Client[F]) BrowseCategories() *BrowseCategoriesBuilder {
	return &BrowseCategoriesBuilder{newBuilder[*browseCategoriesEndpoint, model.Categories](c.s, &browseCategoriesEndpoint{})}
}

// GetGenreSeeds returns the genres usable as recommendation seeds.
func (c *Client[F]) GetGenreSeeds(ctx context.Context) ([]string, error) {
	res, err := get[model.Genres](ctx, c.s, "/recommendations/available-genre-seeds", nil)
	return res.Genres, err
}

// GetAvailableMarkets returns the markets where Spotify is available.
func (c *Client[F]) GetAvailableMarkets(ctx context.Context) ([]string, error) {
	res, err := get[model.Markets](ctx, c.s, "/markets", nil)
	return res.Markets, err
}
