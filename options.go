package spotify

import (
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify/internal/shared"
)

// Option configures a client at construction time.
type Option func(*options)

type options struct {
	httpClient  *http.Client
	logger      *log.Logger
	apiURL      string
	accountsURL string
	now         func() time.Time
}

func newOptions(opts []Option) *options {
	o := &options{
		httpClient: http.DefaultClient,
		logger:     shared.DiscardLogger(),
		apiURL:     apiURL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithHTTPClient sets the [http.Client] used for both the token endpoint and the Web API.
// Timeouts are inherited from it; the client adds none of its own.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithLogger sets the [log.Logger] the client reports requests and token refreshes to. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAPIURL replaces the Web API base URL, e.g. to point at a proxy or a test server.
func WithAPIURL(u string) Option {
	return func(o *options) { o.apiURL = strings.TrimSuffix(u, "/") }
}

// WithAccountsURL replaces the accounts service base URL used for /authorize and /api/token.
func WithAccountsURL(u string) Option {
	return func(o *options) { o.accountsURL = strings.TrimSuffix(u, "/") }
}

// WithClock sets the clock used to stamp tokens and check their expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
