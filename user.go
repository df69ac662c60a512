package spotify

import (
	"context"
	"net/http"
	"net/url"

	"github.com/desertthunder/spotify/model"
)

type topItemsEndpoint struct {
	Type      userItemType `url:"-" json:"-"`
	TimeRange TimeRange    `url:"time_range,omitempty" json:"-"`
	Limit     int          `url:"limit,omitempty" json:"-"`
	Offset    int          `url:"offset,omitempty" json:"-"`
}

func (e *topItemsEndpoint) route() route {
	return route{method: http.MethodGet, path: "/me/top/" + string(e.Type)}
}

// TopItemsBuilder requests a page of the user's top artists or tracks.
type TopItemsBuilder[T any] struct {
	builder[*topItemsEndpoint, *model.Page[T]]
}

// TimeRange selects the period the affinity is computed over. Upstream defaults to MediumTerm.
func (b *TopItemsBuilder[T]) TimeRange(r TimeRange) *TopItemsBuilder[T] {
	b.e.TimeRange = r
	return b
}

// Limit caps the number of items returned.
func (b *TopItemsBuilder[T]) Limit(limit int) *TopItemsBuilder[T] {
	b.e.Limit = limit
	return b
}

// Offset is the index of the first item returned.
func (b *TopItemsBuilder[T]) Offset(offset int) *TopItemsBuilder[T] {
	b.e.Offset = offset
	return b
}

// Get sends the request and returns a page of top items.
func (b *TopItemsBuilder[T]) Get(ctx context.Context) (*model.Page[T], error) {
	return b.send(ctx)
}

type followPlaylistEndpoint struct {
	ID     string `url:"-" json:"-"`
	Public *bool  `url:"-" json:"public,omitempty"`
}

func (e *followPlaylistEndpoint) route() route {
	return route{method: http.MethodPut, path: pathf("/playlists/%s/followers", e.ID), body: true}
}

// FollowPlaylistBuilder adds the user as a follower of a playlist.
type FollowPlaylistBuilder struct {
	builder[*followPlaylistEndpoint, model.Nil]
}

// Public lists the playlist on the user's public profile. Upstream defaults to true.
func (b *FollowPlaylistBuilder) Public(public bool) *FollowPlaylistBuilder {
	b.e.Public = ptr(public)
	return b
}

// Send follows the playlist.
func (b *FollowPlaylistBuilder) Send(ctx context.Context) error {
	_, err := b.send(ctx)
	return err
}

type followedArtistsEndpoint struct {
	Type  followType `url:"type" json:"-"`
	After string     `url:"after,omitempty" json:"-"`
	Limit int        `url:"limit,omitempty" json:"-"`
}

func (e *followedArtistsEndpoint) route() route {
	return route{method: http.MethodGet, path: "/me/following"}
}

// FollowedArtistsBuilder requests a cursor page of the artists the user follows.
type FollowedArtistsBuilder struct {
	builder[*followedArtistsEndpoint, model.FollowedArtists]
}

// After resumes the listing after the artist with the given id, as reported in the previous page's cursors.
func (b *FollowedArtistsBuilder) After(id string) *FollowedArtistsBuilder {
	b.e.After = id
	return b
}

// Limit caps the number of items returned.
func (b *FollowedArtistsBuilder) Limit(limit int) *FollowedArtistsBuilder {
	b.e.Limit = limit
	return b
}

// Get sends the request and returns a cursor page of followed artists.
func (b *FollowedArtistsBuilder) Get(ctx context.Context) (*model.CursorPage[model.Artist], error) {
	res, err := b.send(ctx)
	if err != nil {
		return nil, err
	}
	return &res.Artists, nil
}

type followEndpoint struct {
	Type followType `url:"type" json:"-"`
	IDs  []string   `url:"-" json:"ids"`
}

func (e *followEndpoint) route() route {
	return route{method: http.MethodPut, path: "/me/following", body: true}
}

// FollowBuilder follows, unfollows or checks a set of artists or users.
type FollowBuilder struct {
	builder[*followEndpoint, model.Nil]
}

func newFollow(s *session, kind followType, ids []string) *FollowBuilder {
	e := &followEndpoint{Type: kind, IDs: newIDsBody(ids).IDs}
	return &FollowBuilder{newBuilder[*followEndpoint, model.Nil](s, e)}
}

// Follow adds the ids to the user's followed artists or users.
func (b *FollowBuilder) Follow(ctx context.Context) error {
	_, err := b.send(ctx)
	return err
}

// Unfollow removes the ids from the user's followed artists or users.
func (b *FollowBuilder) Unfollow(ctx context.Context) error {
	query := url.Values{"type": {string(b.e.Type)}}
	_, err := request[model.Nil](ctx, b.s, http.MethodDelete, "/me/following", query, jsonBody(b.e))
	return err
}

// Check reports, per id, whether the user follows it.
func (b *FollowBuilder) Check(ctx context.Context) ([]bool, error) {
	query := url.Values{"type": {string(b.e.Type)}, "ids": {idList(b.e.IDs)}}
	return get[[]bool](ctx, b.s, "/me/following/contains", query)
}

// GetUser returns the public profile of a user.
func (c *Client[F]) GetUser(ctx context.Context, id string) (*model.User, error) {
	return get[*model.User](ctx, c.s, pathf("/users/%s", id), nil)
}

// CheckIfUsersFollowPlaylist reports, per user id, whether the user follows the playlist.
func (c *Client[F]) CheckIfUsersFollowPlaylist(ctx context.Context, playlistID string, userIDs []string) ([]bool, error) {
	return get[[]bool](ctx, c.s, pathf("/playlists/%s/followers/contains", playlistID), idsQuery(userIDs))
}

// GetCurrentUserProfile returns the profile of the user the token belongs to.
func (c *UserClient[F]) GetCurrentUserProfile(ctx context.Context) (*model.User, error) {
	return get[*model.User](ctx, c.s, "/me", nil)
}

// CurrentUserTopArtists returns a builder for the user's top artists.
func (c *UserClient[F]) CurrentUserTopArtists() *TopItemsBuilder[model.Artist] {
	e := &topItemsEndpoint{Type: topArtists}
	return &TopItemsBuilder[model.Artist]{newBuilder[*topItemsEndpoint, *model.Page[model.Artist]](c.s, e)}
}

// CurrentUserTopTracks returns a builder for the user's top tracks.
func (c *UserClient[F]) CurrentUserTopTracks() *TopItemsBuilder[model.Track] {
	e := &topItemsEndpoint{Type: topTracks}
	return &TopItemsBuilder[model.Track]{newBuilder[*topItemsEndpoint, *model.Page[model.Track]](c.s, e)}
}

// FollowPlaylist returns a builder following the playlist with the given id.
func (c *UserClient[F]) FollowPlaylist(id string) *FollowPlaylistBuilder {
	e := &followPlaylistEndpoint{ID: id}
	return &FollowPlaylistBuilder{newBuilder[*followPlaylistEndpoint, model.Nil](c.s, e)}
}

// UnfollowPlaylist removes the user as a follower of a playlist.
func (c *UserClient[F]) UnfollowPlaylist(ctx context.Context, id string) error {
	_, err := del[model.Nil](ctx, c.s, pathf("/playlists/%s/followers", id), nil)
	return err
}

// FollowedArtists returns a builder for the artists the user follows.
func (c *UserClient[F]) FollowedArtists() *FollowedArtistsBuilder {
	e := &followedArtistsEndpoint{Type: followArtist}
	return &FollowedArtistsBuilder{newBuilder[*followedArtistsEndpoint, model.FollowedArtists](c.s, e)}
}

// FollowArtists returns a builder acting on the user's follow relation to the given artists.
func (c *UserClient[F]) FollowArtists(ids []string) *FollowBuilder {
	return newFollow(c.s, followArtist, ids)
}

// FollowUsers returns a builder acting on the user's follow relation to the given users.
func (c *UserClient[F]) FollowUsers(ids []string) *FollowBuilder {
	return newFollow(c.s, followUser, ids)
}
