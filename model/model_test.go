package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayableItem(t *testing.T) {
	t.Run("decodes a track", func(t *testing.T) {
		var item PlayableItem
		err := json.Unmarshal([]byte(`{"type":"track","name":"Doxy","uri":"spotify:track:1","duration_ms":1000}`), &item)
		require.NoError(t, err)

		require.NotNil(t, item.Track)
		assert.Nil(t, item.Episode)
		assert.Equal(t, "Doxy", item.Track.Name)
		assert.Equal(t, 1000, item.Track.DurationMS)
		assert.Equal(t, "spotify:track:1", item.URI())
	})

	t.Run("decodes an episode", func(t *testing.T) {
		var item PlayableItem
		err := json.Unmarshal([]byte(`{"type":"episode","name":"Pilot","uri":"spotify:episode:1"}`), &item)
		require.NoError(t, err)

		require.NotNil(t, item.Episode)
		assert.Nil(t, item.Track)
		assert.Equal(t, "Pilot", item.Episode.Name)
		assert.Equal(t, "spotify:episode:1", item.URI())
	})

	t.Run("decodes an untyped object as a track", func(t *testing.T) {
		var item PlayableItem
		err := json.Unmarshal([]byte(`{"name":"Song"}`), &item)
		require.NoError(t, err)

		require.NotNil(t, item.Track)
		assert.Nil(t, item.Episode)
		assert.Equal(t, "Song", item.Track.Name)
	})

	t.Run("filtered playlist items", func(t *testing.T) {
		var p Playlist
		err := json.Unmarshal([]byte(`{"name":"x","tracks":{"items":[{"track":{"name":"Song"}}]}}`), &p)
		require.NoError(t, err)

		require.Len(t, p.Tracks.Items, 1)
		require.NotNil(t, p.Tracks.Items[0].Track)
		require.NotNil(t, p.Tracks.Items[0].Track.Track)
		assert.Equal(t, "Song", p.Tracks.Items[0].Track.Track.Name)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		var item PlayableItem
		err := json.Unmarshal([]byte(`{"type":"audiobook"}`), &item)
		assert.ErrorContains(t, err, "audiobook")
	})

	t.Run("encodes the item that is set", func(t *testing.T) {
		data, err := json.Marshal(PlayableItem{Episode: &Episode{Name: "Pilot", Type: "episode"}})
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.Equal(t, "Pilot", fields["name"])
		assert.Equal(t, "episode", fields["type"])
	})

	t.Run("empty item has no uri", func(t *testing.T) {
		assert.Empty(t, (&PlayableItem{}).URI())
	})

	t.Run("mixed queue", func(t *testing.T) {
		var q Queue
		err := json.Unmarshal([]byte(`{
			"currently_playing": null,
			"queue": [{"type":"track","uri":"spotify:track:1"},{"type":"episode","uri":"spotify:episode:2"}]
		}`), &q)
		require.NoError(t, err)

		assert.Nil(t, q.CurrentlyPlaying)
		require.Len(t, q.Queue, 2)
		assert.NotNil(t, q.Queue[0].Track)
		assert.NotNil(t, q.Queue[1].Episode)
	})
}

func TestPage(t *testing.T) {
	var p Page[SimplifiedPlaylist]
	err := json.Unmarshal([]byte(`{"href":"h","items":[],"limit":20,"next":null,"offset":0,"previous":null,"total":0}`), &p)
	require.NoError(t, err)

	assert.Nil(t, p.Next)
	assert.Equal(t, 20, p.Limit)
	assert.Empty(t, p.Items)
}
