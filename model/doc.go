// Package model holds the values decoded from Web API responses.
//
// Types follow the object model of https://developer.spotify.com/documentation/web-api/reference/.
// "Simplified" variants are the trimmed objects embedded in other responses, "Saved" variants wrap an
// object with the time it was added to the user's library.
//
// # Paging
//
// Offset paged collections decode into [Page], cursor paged ones into [CursorPage]. The client does not
// iterate pages; Next holds the URL of the following page when there is one.
//
// # Playable items
//
// Queues, playback state and playlist items can hold either a track or an episode. [PlayableItem] decodes
// both, selected by the object's "type" field.
package model
