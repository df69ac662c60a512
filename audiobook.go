package spotify

import (
	"context"
	"net/http"

	"github.com/desertthunder/spotify/model"
)

type audiobookEndpoint struct {
	ID     string `url:"-" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *audiobookEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/audiobooks/%s", e.ID)}
}

// AudiobookBuilder requests a single audiobook.
type AudiobookBuilder struct {
	builder[*audiobookEndpoint, *model.Audiobook]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *AudiobookBuilder) Market(market string) *AudiobookBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the audiobook.
func (b *AudiobookBuilder) Get(ctx context.Context) (*model.Audiobook, error) {
	return b.send(ctx)
}

type audiobooksEndpoint struct {
	IDs    string `url:"ids" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *audiobooksEndpoint) route() route {
	return route{method: http.MethodGet, path: "/audiobooks"}
}

// AudiobooksBuilder requests several audiobooks.
type AudiobooksBuilder struct {
	builder[*audiobooksEndpoint, model.Audiobooks]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *AudiobooksBuilder) Market(market string) *AudiobooksBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the audiobooks, in request order.
func (b *AudiobooksBuilder) Get(ctx context.Context) ([]model.Audiobook, error) {
	res, err := b.send(ctx)
	return res.Audiobooks, err
}

type audiobookChaptersEndpoint struct {
	ID     string `url:"-" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
	Limit  int    `url:"limit,omitempty" json:"-"`
	Offset int    `url:"offset,omitempty" json:"-"`
}

func (e *audiobookChaptersEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/audiobooks/%s/chapters", e.ID)}
}

// AudiobookChaptersBuilder requests a page of an audiobook's chapters.
type AudiobookChaptersBuilder struct {
	builder[*audiobookChaptersEndpoint, *model.Page[model.SimplifiedChapter]]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *AudiobookChaptersBuilder) Market(market string) *AudiobookChaptersBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Limit caps the number of items returned.
func (b *AudiobookChaptersBuilder) Limit(limit int) *AudiobookChaptersBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *AudiobookChaptersBuilder) Offset(offset int) *AudiobookChaptersBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of the audiobook's chapters.
func (b *AudiobookChaptersBuilder) Get(ctx context.Context) (*model.Page[model.SimplifiedChapter], error) {
	return b.send(ctx)
}

type savedAudiobooksEndpoint struct {
	Limit  int `url:"limit,omitempty" json:"-"`
	Offset int `url:"offset,omitempty" json:"-"`
}

func (e *savedAudiobooksEndpoint) route() route {
	return route{method: http.MethodGet, path: "/me/audiobooks"}
}

// SavedAudiobooksBuilder requests a page of the audiobooks in the user's library.
type SavedAudiobooksBuilder struct {
	builder[*savedAudiobooksEndpoint, *model.Page[model.SimplifiedAudiobook]]
}

// Limit caps the number of items returned.
func (b *SavedAudiobooksBuilder) Limit(limit int) *SavedAudiobooksBuilder {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *SavedAudiobooksBuilder) Offset(offset int) *SavedAudiobooksBuilder {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of the user's saved audiobooks.
func (b *SavedAudiobooksBuilder) Get(ctx context.Context) (*model.Page[model.SimplifiedAudiobook], error) {
	return b.send(ctx)
}

// Audiobook returns a builder for the audiobook with the given id.
func (c *Client[F]) Audiobook(id string) *AudiobookBuilder {
	return &AudiobookBuilder{newBuilder[*audiobookEndpoint, *model.Audiobook](c.s, &audiobookEndpoint{ID: id})}
}

// Audiobooks returns a builder for several audiobooks.
func (c *Client[F]) Audiobooks(ids []string) *AudiobooksBuilder {
	return &AudiobooksBuilder{newBuilder[*audiobooksEndpoint, model.Audiobooks](c.s, &audiobooksEndpoint{IDs: idList(ids)})}
}

// AudiobookChapters returns a builder for the chapters of an audiobook.
func (c *Client[F]) AudiobookChapters(audiobookID string) *AudiobookChaptersBuilder {
	e := &audiobookChaptersEndpoint{ID: audiobookID}
	return &AudiobookChaptersBuilder{newBuilder[*audiobookChaptersEndpoint, *model.Page[model.SimplifiedChapter]](c.s, e)}
}

// SavedAudiobooks returns a builder for the audiobooks saved in the user's library.
func (c *UserClient[F]) SavedAudiobooks() *SavedAudiobooksBuilder {
	e := &savedAudiobooksEndpoint{}
	return &SavedAudiobooksBuilder{newBuilder[*savedAudiobooksEndpoint, *model.Page[model.SimplifiedAudiobook]](c.s, e)}
}

// SaveAudiobooks adds audiobooks to the user's library. The ids travel in the query and the request has no body.
func (c *UserClient[F]) SaveAudiobooks(ctx context.Context, ids []string) error {
	_, err := request[model.Nil](ctx, c.s, http.MethodPut, "/me/audiobooks", idsQuery(ids), nil)
	return err
}

// RemoveSavedAudiobooks removes audiobooks from the user's library.
func (c *UserClient[F]) RemoveSavedAudiobooks(ctx context.Context, ids []string) error {
	_, err := request[model.Nil](ctx, c.s, http.MethodDelete, "/me/audiobooks", idsQuery(ids), nil)
	return err
}

// CheckSavedAudiobooks reports, per id, whether the audiobook is in the user's library.
func (c *UserClient[F]) CheckSavedAudiobooks(ctx context.Context, ids []string) ([]bool, error) {
	return get[[]bool](ctx, c.s, "/me/audiobooks/contains", idsQuery(ids))
}
