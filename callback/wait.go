package callback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify/internal/shared"
)

const shutdownTimeout = 5 * time.Second

// Wait serves redirectURI until one callback arrives, then shuts the server down.
//
// The listener binds the URI's host and port, so the URI must point at this machine. Cancel ctx to give up
// waiting; the context error is returned.
func Wait(ctx context.Context, redirectURI string, logger *log.Logger) (Result, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return Result{}, fmt.Errorf("invalid redirect URI: %w", err)
	}

	ln, err := net.Listen("tcp", listenAddr(u))
	if err != nil {
		return Result{}, fmt.Errorf("failed to listen on %s: %w", u.Host, err)
	}
	return Serve(ctx, ln, u.Path, logger)
}

// Serve is [Wait] on an existing listener. The listener is closed on return. A nil logger discards output.
func Serve(ctx context.Context, ln net.Listener, path string, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = shared.DiscardLogger()
	}

	h := NewHandler(path)
	router := NewRouter()
	router.Use(Logging(logger))
	router.Handle(http.MethodGet, h.Path(), h)

	srv := &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("waiting for authorization callback", "addr", ln.Addr().String(), "path", h.Path())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	var (
		res    Result
		resErr error
	)
	select {
	case res = <-h.Result():
	case err := <-serverErrors:
		resErr = fmt.Errorf("callback server error: %w", err)
	case <-ctx.Done():
		resErr = ctx.Err()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("error shutting down callback server", "error", err)
	}

	return res, resErr
}

func listenAddr(u *url.URL) string {
	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(u.Hostname(), port)
}
