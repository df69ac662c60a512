package spotify

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	tu "github.com/desertthunder/spotify/internal/testing"
)

func TestAutoRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("refreshes an expired token before the request", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.RespondToken(http.StatusOK, tu.DefaultToken)
		f.RespondToken(http.StatusOK, `{"access_token":"access-2","token_type":"Bearer","expires_in":3600}`)
		f.Respond(http.MethodGet, "/albums/4aawyAB9vmqN3uQ7FjRGTy", http.StatusOK, `{"id":"4aawyAB9vmqN3uQ7FjRGTy","name":"Album"}`)
		clock := newFakeClock()
		u := newUserClient(t, f, clock, true)
		clock.Advance(time.Hour + time.Second)

		album, err := u.Album("4aawyAB9vmqN3uQ7FjRGTy").Get(ctx)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if album.ID != "4aawyAB9vmqN3uQ7FjRGTy" {
			t.Errorf("unexpected album: %+v", album)
		}

		reqs := f.Requests()
		if len(reqs) != 3 {
			t.Fatalf("expected exchange, refresh and API request, got %d requests", len(reqs))
		}

		refresh, get := reqs[1], reqs[2]
		if refresh.Method != http.MethodPost || refresh.Path != "/api/token" {
			t.Errorf("expected POST /api/token, got %s %s", refresh.Method, refresh.Path)
		}
		if refresh.Form().Get("grant_type") != "refresh_token" || refresh.Form().Get("refresh_token") != "refresh-1" {
			t.Errorf("unexpected refresh form: %v", refresh.Form())
		}
		if get.Method != http.MethodGet || get.Path != "/v1/albums/4aawyAB9vmqN3uQ7FjRGTy" {
			t.Errorf("expected GET /v1/albums/4aawyAB9vmqN3uQ7FjRGTy, got %s %s", get.Method, get.Path)
		}
		if auth := get.Header.Get("Authorization"); auth != "Bearer access-2" {
			t.Errorf("expected the refreshed token, got %q", auth)
		}
	})

	t.Run("expired without auto-refresh makes no request", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		clock := newFakeClock()
		u := newUserClient(t, f, clock, false)
		clock.Advance(time.Hour + time.Second)
		before := len(f.Requests())

		_, err := u.Album("4aawyAB9vmqN3uQ7FjRGTy").Get(ctx)
		if !errors.Is(err, ErrExpiredToken) {
			t.Fatalf("expected ErrExpiredToken, got %v", err)
		}
		if n := len(f.Requests()) - before; n != 0 {
			t.Errorf("expected no requests, got %d", n)
		}

		u.SetAutoRefresh(true)
		if _, err := u.Album("4aawyAB9vmqN3uQ7FjRGTy").Get(ctx); err != nil {
			t.Errorf("expected the request to succeed once auto-refresh is enabled, got %v", err)
		}
	})

	t.Run("fresh token is not refreshed", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		clock := newFakeClock()
		u := newUserClient(t, f, clock, true)
		clock.Advance(time.Hour - time.Second)

		if _, err := u.GetCurrentUserProfile(ctx); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if n := len(f.TokenRequests()); n != 1 {
			t.Errorf("expected only the initial exchange, got %d token requests", n)
		}
	})

	t.Run("failed refresh aborts the request", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.RespondToken(http.StatusOK, tu.DefaultToken)
		f.RespondToken(http.StatusBadRequest, `{"error":"invalid_grant"}`)
		clock := newFakeClock()
		u := newUserClient(t, f, clock, true)
		clock.Advance(2 * time.Hour)

		if _, err := u.Track("t").Get(ctx); !errors.Is(err, ErrOAuth) {
			t.Fatalf("expected ErrOAuth, got %v", err)
		}
		if n := len(f.APIRequests()); n != 0 {
			t.Errorf("expected no API requests, got %d", n)
		}
	})
}

func TestRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("list parameters are comma joined", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.Respond(http.MethodGet, "/tracks", http.StatusOK, `{"tracks":[{"id":"a"},{"id":"b"},{"id":"c"}]}`)
		u := newUserClient(t, f, newFakeClock(), false)

		tracks, err := u.Tracks([]string{"a", "b", "c"}).Market("US").Get(ctx)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if len(tracks) != 3 {
			t.Errorf("expected 3 tracks, got %d", len(tracks))
		}

		var raw string
		for _, r := range f.Requests() {
			if r.Path == "/v1/tracks" {
				raw = r.Query.Encode()
			}
		}
		if raw != "ids=a%2Cb%2Cc&market=US" {
			t.Errorf("unexpected query: %s", raw)
		}
	})

	t.Run("empty PUT sends Content-Length zero", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.Respond(http.MethodPut, "/me/audiobooks", http.StatusOK, "")
		u := newUserClient(t, f, newFakeClock(), false)

		if err := u.SaveAudiobooks(ctx, []string{"id1"}); err != nil {
			t.Fatalf("request failed: %v", err)
		}

		req := f.APIRequests()[0]
		if req.Method != http.MethodPut || req.Path != "/me/audiobooks" {
			t.Errorf("expected PUT /me/audiobooks, got %s %s", req.Method, req.Path)
		}
		if req.Query.Get("ids") != "id1" {
			t.Errorf("expected ids=id1, got %v", req.Query)
		}
		if cl := req.Header.Get("Content-Length"); cl != "0" {
			t.Errorf("expected Content-Length 0, got %q", cl)
		}
		if len(req.Body) != 0 {
			t.Errorf("expected no body, got %q", req.Body)
		}
	})

	t.Run("empty DELETE sends no body", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.Respond(http.MethodDelete, "/me/audiobooks", http.StatusOK, "")
		u := newUserClient(t, f, newFakeClock(), false)

		if err := u.RemoveSavedAudiobooks(ctx, []string{"id1"}); err != nil {
			t.Fatalf("request failed: %v", err)
		}

		req := f.APIRequests()[0]
		if req.Method != http.MethodDelete || req.Query.Get("ids") != "id1" {
			t.Errorf("expected DELETE with ids=id1, got %s %v", req.Method, req.Query)
		}
		if cl := req.Header.Get("Content-Length"); cl != "" && cl != "0" {
			t.Errorf("expected no Content-Length or zero, got %q", cl)
		}
		if ct := req.Header.Get("Content-Type"); ct != "" {
			t.Errorf("expected no Content-Type, got %q", ct)
		}
		if len(req.Body) != 0 {
			t.Errorf("expected no body, got %q", req.Body)
		}
	})

	t.Run("error envelope", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.Respond(http.MethodPut, "/me/player/shuffle", http.StatusForbidden,
			`{"error":{"status":403,"message":"Player command failed: Restriction violated","reason":"UNKNOWN"}}`)
		u := newUserClient(t, f, newFakeClock(), false)

		err := u.TogglePlaybackShuffle(true).Send(ctx)
		if !errors.Is(err, ErrAPI) {
			t.Fatalf("expected ErrAPI, got %v", err)
		}

		apiErr, ok := AsAPIError(err)
		if !ok {
			t.Fatalf("expected *APIError, got %T", err)
		}
		want := APIError{Status: 403, Message: "Player command failed: Restriction violated", Reason: "UNKNOWN"}
		if *apiErr != want {
			t.Errorf("expected %+v, got %+v", want, *apiErr)
		}

		if q := f.APIRequests()[0].Query.Get("state"); q != "true" {
			t.Errorf("expected state=true, got %q", q)
		}
	})

	t.Run("error envelope without status", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.Respond(http.MethodGet, "/me", http.StatusUnauthorized, `{"error":{"message":"Invalid access token"}}`)
		u := newUserClient(t, f, newFakeClock(), false)

		_, err := u.GetCurrentUserProfile(ctx)
		apiErr, ok := AsAPIError(err)
		if !ok || apiErr.Status != http.StatusUnauthorized {
			t.Errorf("expected a 401 APIError, got %v", err)
		}
	})

	t.Run("non JSON error body", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.Respond(http.MethodGet, "/albums/x", http.StatusBadGateway, "<html>Bad Gateway</html>")
		u := newUserClient(t, f, newFakeClock(), false)

		_, err := u.Album("x").Get(ctx)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse, got %v", err)
		}

		var mErr *MalformedResponseError
		if !errors.As(err, &mErr) || mErr.Status != http.StatusBadGateway {
			t.Errorf("expected status 502 in %v", err)
		}
		if errors.Is(err, ErrAPI) {
			t.Error("a malformed response is not an API error")
		}
	})

	t.Run("undecodable success body", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.Respond(http.MethodGet, "/albums/x", http.StatusOK, `{"id":`)
		u := newUserClient(t, f, newFakeClock(), false)

		if _, err := u.Album("x").Get(ctx); !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("no content", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.Respond(http.MethodGet, "/me/player", http.StatusNoContent, "")
		u := newUserClient(t, f, newFakeClock(), false)

		state, err := u.GetPlaybackState(ctx, "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if state != nil {
			t.Errorf("expected no playback state, got %+v", state)
		}
		if len(f.APIRequests()[0].Query) != 0 {
			t.Errorf("expected no query, got %v", f.APIRequests()[0].Query)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		u := newUserClient(t, f, newFakeClock(), false)
		u.s.http = &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused"))}

		_, err := u.Album("x").Get(ctx)
		if !errors.Is(err, ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
		if !strings.Contains(err.Error(), "connection refused") {
			t.Errorf("expected the cause in %v", err)
		}
	})

	t.Run("unreadable body", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		u := newUserClient(t, f, newFakeClock(), false)
		u.s.http = &http.Client{Transport: tu.NewMockRoundTripper(&http.Response{
			StatusCode: http.StatusOK,
			Body:       &tu.FCloser{},
			Header:     http.Header{},
		}, nil)}

		if _, err := u.Album("x").Get(ctx); !errors.Is(err, ErrTransport) {
			t.Errorf("expected ErrTransport, got %v", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		u := newUserClient(t, f, newFakeClock(), false)

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := u.Album("x").Get(cctx)
		if !errors.Is(err, context.Canceled) || !errors.Is(err, ErrTransport) {
			t.Errorf("expected a canceled transport error, got %v", err)
		}
	})

	t.Run("bearer token on every request", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		u := newUserClient(t, f, newFakeClock(), false)

		u.GetUser(ctx, "someone")
		u.SaveTracks(ctx, []string{"t"})
		for _, r := range f.APIRequests() {
			if got := r.Header.Get("Authorization"); got != "Bearer access-1" {
				t.Errorf("%s %s: expected bearer token, got %q", r.Method, r.Path, got)
			}
		}
	})

	t.Run("playlist image upload", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		f.Respond(http.MethodPut, "/playlists/p1/images", http.StatusAccepted, "")
		u := newUserClient(t, f, newFakeClock(), false)
		image := []byte{0xff, 0xd8, 0xff, 0xe0}

		if err := u.AddPlaylistImage(ctx, "p1", image); err != nil {
			t.Fatalf("upload failed: %v", err)
		}

		req := f.APIRequests()[0]
		if ct := req.Header.Get("Content-Type"); ct != "image/jpeg" {
			t.Errorf("expected image/jpeg, got %s", ct)
		}
		if string(req.Body) != base64.StdEncoding.EncodeToString(image) {
			t.Errorf("expected base64 body, got %q", req.Body)
		}
	})

	t.Run("requests are serialised", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		u := newUserClient(t, f, newFakeClock(), false)
		counter := tu.NewCountingRoundTripper(f.Client().Transport)
		u.s.http = &http.Client{Transport: counter}

		done := make(chan error, 8)
		for i := 0; i < 8; i++ {
			go func() {
				_, err := u.Artist("a").Get(ctx)
				done <- err
			}()
		}
		for i := 0; i < 8; i++ {
			if err := <-done; err != nil {
				t.Errorf("request failed: %v", err)
			}
		}
		if counter.Count() != 8 {
			t.Errorf("expected 8 requests, got %d", counter.Count())
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("whitespace body is empty", func(t *testing.T) {
		v, err := decode[*Token](http.StatusOK, []byte("  \n"))
		if err != nil || v != nil {
			t.Errorf("expected zero value, got %v, %v", v, err)
		}
	})

	t.Run("error body that is not an envelope", func(t *testing.T) {
		err := decodeError(http.StatusNotFound, []byte(`{"message":"nope"}`))
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})
}
