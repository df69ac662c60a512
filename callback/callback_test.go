package callback

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/desertthunder/spotify/internal/shared"
)

func TestHandler(t *testing.T) {
	t.Run("delivers code and state", func(t *testing.T) {
		h := NewHandler("/callback")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?code=abc&state=xyz", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		res := <-h.Result()
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if res.Code != "abc" || res.State != "xyz" {
			t.Errorf("expected code abc and state xyz, got %q and %q", res.Code, res.State)
		}

		if _, ok := <-h.Result(); ok {
			t.Error("result channel should be closed after one result")
		}
	})

	t.Run("upstream error parameter", func(t *testing.T) {
		h := NewHandler("/callback")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?error=access_denied&state=xyz", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}

		res := <-h.Result()
		var authErr *AuthorizationError
		if !errors.As(res.Err, &authErr) {
			t.Fatalf("expected AuthorizationError, got %v", res.Err)
		}
		if authErr.Code != "access_denied" {
			t.Errorf("expected access_denied, got %s", authErr.Code)
		}
		if res.State != "xyz" {
			t.Errorf("state should still be delivered, got %q", res.State)
		}
	})

	t.Run("missing code", func(t *testing.T) {
		h := NewHandler("/callback")
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/callback?state=xyz", nil))

		if res := <-h.Result(); res.Err == nil {
			t.Error("expected an error without a code")
		}
	})

	t.Run("second callback rejected", func(t *testing.T) {
		h := NewHandler("/callback")
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/callback?code=a&state=s", nil))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?code=b&state=s", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400 for replay, got %d", rec.Code)
		}

		if res := <-h.Result(); res.Code != "a" {
			t.Errorf("expected first code to win, got %q", res.Code)
		}
	})

	t.Run("empty path defaults to root", func(t *testing.T) {
		if p := NewHandler("").Path(); p != "/" {
			t.Errorf("expected /, got %s", p)
		}
	})
}

func TestRouter(t *testing.T) {
	t.Run("middleware order", func(t *testing.T) {
		var order []string
		mw := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		r := NewRouter()
		r.Use(mw("first"), mw("second"))
		r.Handle(http.MethodGet, "/x", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("unexpected middleware order: %v", order)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		r := NewRouter()
		r.Handle(http.MethodGet, "/x", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})
}

func TestServe(t *testing.T) {
	logger := shared.DiscardLogger()

	t.Run("returns the callback", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to listen: %v", err)
		}

		done := make(chan Result, 1)
		go func() {
			res, err := Serve(context.Background(), ln, "/callback", logger)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			done <- res
		}()

		resp, err := http.Get("http://" + ln.Addr().String() + "/callback?code=c0de&state=st")
		if err != nil {
			t.Fatalf("callback request failed: %v", err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case res := <-done:
			if res.Code != "c0de" || res.State != "st" {
				t.Errorf("unexpected result: %+v", res)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for Serve")
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to listen: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := Serve(ctx, ln, "/callback", logger); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("invalid redirect URI", func(t *testing.T) {
		if _, err := Wait(context.Background(), "://bad", logger); err == nil {
			t.Error("expected an error for an invalid URI")
		}
	})
}
