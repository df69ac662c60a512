package model

import (
	"encoding/json"
	"fmt"
)

// PlayableItem is a track or an episode. Exactly one of Track and Episode is set after decoding. An object
// without a "type" field, as returned under a field filter that omits it, decodes as a Track.
type PlayableItem struct {
	Track   *Track
	Episode *Episode
}

func (p *PlayableItem) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case "track", "":
		p.Track = new(Track)
		return json.Unmarshal(data, p.Track)
	case "episode":
		p.Episode = new(Episode)
		return json.Unmarshal(data, p.Episode)
	default:
		return fmt.Errorf("unknown playable item type %q", head.Type)
	}
}

func (p PlayableItem) MarshalJSON() ([]byte, error) {
	if p.Episode != nil {
		return json.Marshal(p.Episode)
	}
	return json.Marshal(p.Track)
}

// URI returns the Spotify URI of whichever item is set.
func (p *PlayableItem) URI() string {
	switch {
	case p.Track != nil:
		return p.Track.URI
	case p.Episode != nil:
		return p.Episode.URI
	}
	return ""
}

// Device is a device the user can play on.
type Device struct {
	ID               *string `json:"id"`
	IsActive         bool    `json:"is_active"`
	IsPrivateSession bool    `json:"is_private_session"`
	IsRestricted     bool    `json:"is_restricted"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	VolumePercent    *int    `json:"volume_percent"`
	SupportsVolume   bool    `json:"supports_volume"`
}

// Devices wraps the available devices response.
type Devices struct {
	Devices []Device `json:"devices"`
}

// PlaybackContext is the album, artist, playlist or show being played.
type PlaybackContext struct {
	Type         string       `json:"type"`
	Href         string       `json:"href"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

// Actions lists the playback actions that are currently disallowed.
type Actions struct {
	InterruptingPlayback  bool `json:"interrupting_playback,omitempty"`
	Pausing               bool `json:"pausing,omitempty"`
	Resuming              bool `json:"resuming,omitempty"`
	Seeking               bool `json:"seeking,omitempty"`
	SkippingNext          bool `json:"skipping_next,omitempty"`
	SkippingPrev          bool `json:"skipping_prev,omitempty"`
	TogglingRepeatContext bool `json:"toggling_repeat_context,omitempty"`
	TogglingShuffle       bool `json:"toggling_shuffle,omitempty"`
	TogglingRepeatTrack   bool `json:"toggling_repeat_track,omitempty"`
	TransferringPlayback  bool `json:"transferring_playback,omitempty"`
}

// PlaybackState is the user's current playback.
type PlaybackState struct {
	Device               *Device          `json:"device,omitempty"`
	RepeatState          string           `json:"repeat_state,omitempty"`
	ShuffleState         bool             `json:"shuffle_state"`
	Context              *PlaybackContext `json:"context"`
	Timestamp            int64            `json:"timestamp"`
	ProgressMS           *int             `json:"progress_ms"`
	IsPlaying            bool             `json:"is_playing"`
	Item                 *PlayableItem    `json:"item"`
	CurrentlyPlayingType string           `json:"currently_playing_type"`
	Actions              struct {
		Disallows Actions `json:"disallows"`
	} `json:"actions"`
}

// Queue is the currently playing item and the user's queue.
type Queue struct {
	CurrentlyPlaying *PlayableItem  `json:"currently_playing"`
	Queue            []PlayableItem `json:"queue"`
}

// PlayHistory is a recently played track.
type PlayHistory struct {
	Track    Track            `json:"track"`
	PlayedAt string           `json:"played_at"`
	Context  *PlaybackContext `json:"context"`
}
