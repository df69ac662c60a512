package spotify

import (
	"context"
	"fmt"
	"net/url"

	qs "github.com/google/go-querystring/query"
)

// route is where an endpoint record is sent. body reports whether the record's JSON fields form the request body.
type route struct {
	method string
	path   string
	body   bool
}

// endpoint is implemented by every endpoint record.
//
// Records tag query parameters for go-querystring and body fields for encoding/json, each field excluded from
// the other encoding, so the partition between query and body is fixed per endpoint. Optional fields carry
// omitempty and are never sent when absent.
type endpoint interface {
	route() route
}

// queryAppender is implemented by records whose query keys are not known statically.
type queryAppender interface {
	appendQuery(url.Values)
}

// builder binds an endpoint record to the session that will send it. Every endpoint builder embeds one and adds
// its option setters and its terminal operation.
type builder[E endpoint, T any] struct {
	s *session
	e E
}

func newBuilder[E endpoint, T any](s *session, e E) builder[E, T] {
	return builder[E, T]{s: s, e: e}
}

func (b *builder[E, T]) send(ctx context.Context) (T, error) {
	return send[T](ctx, b.s, b.e)
}

// send serialises a record and runs it through the request pipeline.
func send[T any](ctx context.Context, s *session, e endpoint) (T, error) {
	r := e.route()

	query, err := encodeQuery(e)
	if err != nil {
		var zero T
		return zero, err
	}

	var body *payload
	if r.body {
		body = jsonBody(e)
	}
	return request[T](ctx, s, r.method, r.path, query, body)
}

func encodeQuery(e endpoint) (url.Values, error) {
	values, err := qs.Values(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	if a, ok := e.(queryAppender); ok {
		a.appendQuery(values)
	}
	return values, nil
}

func pathf(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
