package spotify

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/desertthunder/spotify/model"
)

func marketQuery(market string) url.Values {
	if market == "" {
		return nil
	}
	return url.Values{"market": {marketCode(market)}}
}

func deviceQuery(deviceID string) url.Values {
	if deviceID == "" {
		return nil
	}
	return url.Values{"device_id": {deviceID}}
}

type transferPlaybackEndpoint struct {
	DeviceIDs []string `url:"-" json:"device_ids"`
	Play      *bool    `url:"-" json:"play,omitempty"`
}

func (e *transferPlaybackEndpoint) route() route {
	return route{method: http.MethodPut, path: "/me/player", body: true}
}

// TransferPlaybackBuilder moves playback to another device.
type TransferPlaybackBuilder struct {
	builder[*transferPlaybackEndpoint, model.Nil]
}

// Play starts playback on the new device when true. When unset the current state is kept.
func (b *TransferPlaybackBuilder) Play(play bool) *TransferPlaybackBuilder {
	b.e.Play = ptr(play)
	return b
}

// Send transfers playback.
func (b *TransferPlaybackBuilder) Send(ctx context.Context) error {
	_, err := b.send(ctx)
	return err
}

type playbackOffset struct {
	Position *int   `json:"position,omitempty"`
	URI      string `json:"uri,omitempty"`
}

type startPlaybackEndpoint struct {
	DeviceID   string          `url:"device_id,omitempty" json:"-"`
	ContextURI string          `url:"-" json:"context_uri,omitempty"`
	URIs       []string        `url:"-" json:"uris,omitempty"`
	Offset     *playbackOffset `url:"-" json:"offset,omitempty"`
	PositionMS *int            `url:"-" json:"position_ms,omitempty"`
}

func (e *startPlaybackEndpoint) route() route {
	return route{method: http.MethodPut, path: "/me/player/play", body: true}
}

// StartPlaybackBuilder starts a new context or resumes playback. With no options set it resumes.
type StartPlaybackBuilder struct {
	builder[*startPlaybackEndpoint, model.Nil]
}

// DeviceID targets a device other than the currently active one.
func (b *StartPlaybackBuilder) DeviceID(id string) *StartPlaybackBuilder {
	b.e.DeviceID = id
	return b
}

// ContextURI plays an album, artist or playlist.
func (b *StartPlaybackBuilder) ContextURI(uri string) *StartPlaybackBuilder {
	b.e.ContextURI = uri
	return b
}

// URIs plays the given tracks.
func (b *StartPlaybackBuilder) URIs(uris ...string) *StartPlaybackBuilder {
	b.e.URIs = uris
	return b
}

// Offset starts the context at a zero based position.
func (b *StartPlaybackBuilder) Offset(position int) *StartPlaybackBuilder {
	b.e.Offset = &playbackOffset{Position: ptr(position)}
	return b
}

// OffsetURI starts the context at the item with the given uri.
func (b *StartPlaybackBuilder) OffsetURI(uri string) *StartPlaybackBuilder {
	b.e.Offset = &playbackOffset{URI: uri}
	return b
}

// Position starts the item at d. It is sent in whole milliseconds.
func (b *StartPlaybackBuilder) Position(d time.Duration) *StartPlaybackBuilder {
	b.e.PositionMS = ptr(int(d.Milliseconds()))
	return b
}

// Send starts or resumes playback.
func (b *StartPlaybackBuilder) Send(ctx context.Context) error {
	_, err := b.send(ctx)
	return err
}

// playerCommandEndpoint is a bodiless PUT or POST to the player carrying its arguments in the query.
type playerCommandEndpoint struct {
	method   string
	path     string
	query    url.Values
	DeviceID string `url:"device_id,omitempty" json:"-"`
}

func (e *playerCommandEndpoint) route() route {
	return route{method: e.method, path: e.path}
}

func (e *playerCommandEndpoint) appendQuery(q url.Values) {
	for k, v := range e.query {
		q[k] = v
	}
}

// PlayerCommandBuilder sends a player command. Seek, repeat, volume, shuffle and queue commands share it.
type PlayerCommandBuilder struct {
	builder[*playerCommandEndpoint, model.Nil]
}

func newPlayerCommand(s *session, method, path string, query url.Values) *PlayerCommandBuilder {
	e := &playerCommandEndpoint{method: method, path: path, query: query}
	return &PlayerCommandBuilder{newBuilder[*playerCommandEndpoint, model.Nil](s, e)}
}

// DeviceID targets a device other than the currently active one.
func (b *PlayerCommandBuilder) DeviceID(id string) *PlayerCommandBuilder {
	b.e.DeviceID = id
	return b
}

// Send issues the command.
func (b *PlayerCommandBuilder) Send(ctx context.Context) error {
	_, err := b.send(ctx)
	return err
}

type recentlyPlayedEndpoint struct {
	Limit  int   `url:"limit,omitempty" json:"-"`
	After  int64 `url:"after,omitempty" json:"-"`
	Before int64 `url:"before,omitempty" json:"-"`
}

func (e *recentlyPlayedEndpoint) route() route {
	return route{method: http.MethodGet, path: "/me/player/recently-played"}
}

// RecentlyPlayedBuilder requests a cursor page of the user's play history. After and Before are exclusive.
type RecentlyPlayedBuilder struct {
	builder[*recentlyPlayedEndpoint, *model.CursorPage[model.PlayHistory]]
}

// Limit caps the number of items returned.
func (b *RecentlyPlayedBuilder) Limit(limit int) *RecentlyPlayedBuilder {
	b.e.Limit = limit
	return b
}

// After returns items played after t. It clears Before.
func (b *RecentlyPlayedBuilder) After(t time.Time) *RecentlyPlayedBuilder {
	b.e.After, b.e.Before = t.UnixMilli(), 0
	return b
}

// Before returns items played before t. It clears After.
func (b *RecentlyPlayedBuilder) Before(t time.Time) *RecentlyPlayedBuilder {
	b.e.Before, b.e.After = t.UnixMilli(), 0
	return b
}

// Get sends the request and returns a cursor page of play history.
func (b *RecentlyPlayedBuilder) Get(ctx context.Context) (*model.CursorPage[model.PlayHistory], error) {
	return b.send(ctx)
}

// GetPlaybackState returns the user's playback state, or nil when nothing is playing. market may be empty.
func (c *UserClient[F]) GetPlaybackState(ctx context.Context, market string) (*model.PlaybackState, error) {
	return get[*model.PlaybackState](ctx, c.s, "/me/player", marketQuery(market))
}

// TransferPlayback returns a builder moving playback to the given device.
func (c *UserClient[F]) TransferPlayback(deviceID string) *TransferPlaybackBuilder {
	e := &transferPlaybackEndpoint{DeviceIDs: []string{deviceID}}
	return &TransferPlaybackBuilder{newBuilder[*transferPlaybackEndpoint, model.Nil](c.s, e)}
}

// GetAvailableDevices returns the devices the user can play on.
func (c *UserClient[F]) GetAvailableDevices(ctx context.Context) ([]model.Device, error) {
	res, err := get[model.Devices](ctx, c.s, "/me/player/devices", nil)
	return res.Devices, err
}

// GetCurrentlyPlayingTrack returns the item being played, or nil when nothing is playing.
func (c *UserClient[F]) GetCurrentlyPlayingTrack(ctx context.Context, market string) (*model.PlaybackState, error) {
	return get[*model.PlaybackState](ctx, c.s, "/me/player/currently-playing", marketQuery(market))
}

// StartPlayback returns a builder starting or resuming playback.
func (c *UserClient[F]) StartPlayback() *StartPlaybackBuilder {
	return &StartPlaybackBuilder{newBuilder[*startPlaybackEndpoint, model.Nil](c.s, &startPlaybackEndpoint{})}
}

// PausePlayback pauses playback. deviceID may be empty to target the active device.
func (c *UserClient[F]) PausePlayback(ctx context.Context, deviceID string) error {
	_, err := request[model.Nil](ctx, c.s, http.MethodPut, "/me/player/pause", deviceQuery(deviceID), nil)
	return err
}

// SkipToNext skips to the next item. deviceID may be empty to target the active device.
func (c *UserClient[F]) SkipToNext(ctx context.Context, deviceID string) error {
	_, err := request[model.Nil](ctx, c.s, http.MethodPost, "/me/player/next", deviceQuery(deviceID), nil)
	return err
}

// SkipToPrevious skips to the previous item. deviceID may be empty to target the active device.
func (c *UserClient[F]) SkipToPrevious(ctx context.Context, deviceID string) error {
	_, err := request[model.Nil](ctx, c.s, http.MethodPost, "/me/player/previous", deviceQuery(deviceID), nil)
	return err
}

// SeekToPosition returns a builder seeking the current item to position.
func (c *UserClient[F]) SeekToPosition(position time.Duration) *PlayerCommandBuilder {
	query := url.Values{"position_ms": {formatInt(position.Milliseconds())}}
	return newPlayerCommand(c.s, http.MethodPut, "/me/player/seek", query)
}

// SetRepeatMode returns a builder setting the repeat mode.
func (c *UserClient[F]) SetRepeatMode(mode RepeatMode) *PlayerCommandBuilder {
	return newPlayerCommand(c.s, http.MethodPut, "/me/player/repeat", url.Values{"state": {string(mode)}})
}

// SetPlaybackVolume returns a builder setting the volume, from 0 to 100.
func (c *UserClient[F]) SetPlaybackVolume(percent int) *PlayerCommandBuilder {
	query := url.Values{"volume_percent": {formatInt(int64(percent))}}
	return newPlayerCommand(c.s, http.MethodPut, "/me/player/volume", query)
}

// TogglePlaybackShuffle returns a builder turning shuffle on or off.
func (c *UserClient[F]) TogglePlaybackShuffle(state bool) *PlayerCommandBuilder {
	return newPlayerCommand(c.s, http.MethodPut, "/me/player/shuffle", url.Values{"state": {formatBool(state)}})
}

// RecentlyPlayedTracks returns a builder for the user's recently played tracks.
func (c *UserClient[F]) RecentlyPlayedTracks() *RecentlyPlayedBuilder {
	e := &recentlyPlayedEndpoint{}
	return &RecentlyPlayedBuilder{newBuilder[*recentlyPlayedEndpoint, *model.CursorPage[model.PlayHistory]](c.s, e)}
}

// GetUserQueue returns the currently playing item and the user's queue.
func (c *UserClient[F]) GetUserQueue(ctx context.Context) (*model.Queue, error) {
	return get[*model.Queue](ctx, c.s, "/me/player/queue", nil)
}

// AddItemToQueue returns a builder appending a track or episode uri to the user's queue.
func (c *UserClient[F]) AddItemToQueue(uri string) *PlayerCommandBuilder {
	return newPlayerCommand(c.s, http.MethodPost, "/me/player/queue", url.Values{"uri": {uri}})
}
