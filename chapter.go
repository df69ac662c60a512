package spotify

import (
	"context"
	"net/http"

	"github.com/desertthunder/spotify/model"
)

type chapterEndpoint struct {
	ID     string `url:"-" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *chapterEndpoint) route() route {
	return route{method: http.MethodGet, path: pathf("/chapters/%s", e.ID)}
}

// ChapterBuilder requests a single audiobook chapter.
type ChapterBuilder struct {
	builder[*chapterEndpoint, *model.Chapter]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *ChapterBuilder) Market(market string) *ChapterBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the chapter.
func (b *ChapterBuilder) Get(ctx context.Context) (*model.Chapter, error) {
	return b.send(ctx)
}

type chaptersEndpoint struct {
	IDs    string `url:"ids" json:"-"`
	Market string `url:"market,omitempty" json:"-"`
}

func (e *chaptersEndpoint) route() route {
	return route{method: http.MethodGet, path: "/chapters"}
}

// ChaptersBuilder requests several chapters.
type ChaptersBuilder struct {
	builder[*chaptersEndpoint, model.Chapters]
}

// Market applies track relinking for a country, an ISO 3166-1 alpha-2 code or "from_token".
func (b *ChaptersBuilder) Market(market string) *ChaptersBuilder {
	b.e.Market = marketCode(market)
	return b
}

// Get sends the request and returns the chapters, in request order.
func (b *ChaptersBuilder) Get(ctx context.Context) ([]model.Chapter, error) {
	res, err := b.send(ctx)
	return res.Chapters, err
}

// Chapter returns a builder for the chapter with the given id.
//
// Upstream currently answers this endpoint with an error in most markets; the error is returned as is.
func (c *Client[F]) Chapter(id string) *ChapterBuilder {
	return &ChapterBuilder{newBuilder[*chapterEndpoint, *model.Chapter](c.s, &chapterEndpoint{ID: id})}
}

// Chapters returns a builder for several chapters.
func (c *Client[F]) Chapters(ids []string) *ChaptersBuilder {
	return &ChaptersBuilder{newBuilder[*chaptersEndpoint, model.Chapters](c.s, &chaptersEndpoint{IDs: idList(ids)})}
}
