package spotify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/desertthunder/spotify/internal/shared"
	"golang.org/x/oauth2"
)

// unauthenticated is the state every flow starts in: an OAuth adapter and an HTTP client, no token.
type unauthenticated struct {
	oauth       *oauthClient
	opts        *options
	autoRefresh bool
}

func newUnauthenticated(flow Flow, redirectURI string, autoRefresh bool, opts []Option) unauthenticated {
	o := newOptions(opts)
	o.logger = shared.WithLogger(o.logger, "client_id", flow.ClientID())
	return unauthenticated{
		oauth:       newOAuthClient(flow, redirectURI, o),
		opts:        o,
		autoRefresh: autoRefresh,
	}
}

func (u *unauthenticated) httpClient() *http.Client {
	return u.opts.httpClient
}

// session moves the adapter and HTTP client into an authenticated session holding tok.
func (u *unauthenticated) session(tok *oauth2.Token, requested []string) *session {
	s := &session{
		oauth:       u.oauth,
		http:        u.opts.httpClient,
		autoRefresh: u.autoRefresh,
		apiURL:      u.opts.apiURL,
		log:         u.opts.logger,
		now:         u.opts.now,
	}
	s.token = s.stamp(tok, requested)
	return s
}

// AuthCodeClient is an unauthenticated client for the authorization code flow.
//
// It offers no endpoints. [AuthCodeClient.Authenticate] turns it into a [UserClient] that reuses its HTTP client
// and OAuth configuration; the AuthCodeClient should not be used afterwards.
type AuthCodeClient struct {
	unauthenticated
	flow AuthCodeGrant
}

// NewAuthCodeClient creates an unauthenticated client for the authorization code flow.
func NewAuthCodeClient(flow AuthCodeGrant, redirectURI string, autoRefresh bool, opts ...Option) *AuthCodeClient {
	return &AuthCodeClient{
		unauthenticated: newUnauthenticated(flow, redirectURI, autoRefresh, opts),
		flow:            flow,
	}
}

// Authorisation starts an authorization attempt: a fresh CSRF state and the URL to send the user to.
func (c *AuthCodeClient) Authorisation(scopes ...Scope) *Authorisation {
	state := shared.GenerateState()
	return &Authorisation{authorisation{
		url:    c.oauth.authURL(state, scopes, ""),
		state:  state,
		scopes: scopeStrings(scopes),
	}}
}

// Authenticate exchanges the authorization code received on the redirect for a token.
//
// state must be byte-equal to the handle's CSRF state, otherwise [ErrInvalidStateParameter] is returned without
// contacting the token endpoint. A handle can be used for one exchange only.
func (c *AuthCodeClient) Authenticate(ctx context.Context, auth *Authorisation, code, state string) (*UserClient[AuthCodeGrant], error) {
	if auth == nil {
		return nil, ErrInvalidStateParameter
	}
	if err := auth.spend(state); err != nil {
		return nil, err
	}

	tok, err := c.oauth.exchangeCode(ctx, c.httpClient(), code, "")
	if err != nil {
		return nil, err
	}

	c.opts.logger.Debug("authenticated", "flow", "authorization_code")
	return &UserClient[AuthCodeGrant]{newClient(c.flow, c.session(tok, auth.scopes))}, nil
}

// PKCEClient is an unauthenticated client for the authorization code flow with PKCE.
type PKCEClient struct {
	unauthenticated
	flow AuthCodeGrantPKCE
}

// NewPKCEClient creates an unauthenticated client for the PKCE authorization code flow.
func NewPKCEClient(flow AuthCodeGrantPKCE, redirectURI string, autoRefresh bool, opts ...Option) *PKCEClient {
	return &PKCEClient{
		unauthenticated: newUnauthenticated(flow, redirectURI, autoRefresh, opts),
		flow:            flow,
	}
}

// Authorisation starts an authorization attempt with a fresh CSRF state and PKCE verifier. The URL carries the
// verifier's S256 challenge.
func (c *PKCEClient) Authorisation(scopes ...Scope) *AuthorisationPKCE {
	state := shared.GenerateState()
	verifier := oauth2.GenerateVerifier()
	return &AuthorisationPKCE{
		authorisation: authorisation{
			url:    c.oauth.authURL(state, scopes, verifier),
			state:  state,
			scopes: scopeStrings(scopes),
		},
		verifier: verifier,
	}
}

// Authenticate exchanges the authorization code for a token, presenting the handle's PKCE verifier.
func (c *PKCEClient) Authenticate(ctx context.Context, auth *AuthorisationPKCE, code, state string) (*UserClient[AuthCodeGrantPKCE], error) {
	if auth == nil {
		return nil, ErrInvalidStateParameter
	}
	if err := auth.spend(state); err != nil {
		return nil, err
	}

	tok, err := c.oauth.exchangeCode(ctx, c.httpClient(), code, auth.verifier)
	if err != nil {
		return nil, err
	}

	c.opts.logger.Debug("authenticated", "flow", "authorization_code_pkce")
	return &UserClient[AuthCodeGrantPKCE]{newClient(c.flow, c.session(tok, auth.scopes))}, nil
}

// ClientCredsClient is an unauthenticated client for the client credentials flow.
type ClientCredsClient struct {
	unauthenticated
	flow ClientCreds
}

// NewClientCredsClient creates an unauthenticated client for the client credentials flow.
//
// Client credentials tokens carry no refresh token, so auto-refresh has nothing to refresh with and an expired
// token fails with [ErrRefreshUnavailable] when it is enabled.
func NewClientCredsClient(flow ClientCreds, autoRefresh bool, opts ...Option) *ClientCredsClient {
	return &ClientCredsClient{
		unauthenticated: newUnauthenticated(flow, "", autoRefresh, opts),
		flow:            flow,
	}
}

// Authenticate exchanges the client credentials for a token.
func (c *ClientCredsClient) Authenticate(ctx context.Context, scopes ...Scope) (*Client[ClientCreds], error) {
	tok, err := c.oauth.exchangeClientCredentials(ctx, c.httpClient(), scopes)
	if err != nil {
		return nil, err
	}

	// Client credentials tokens are never refreshable.
	tok.RefreshToken = ""

	c.opts.logger.Debug("authenticated", "flow", "client_credentials")
	return newClient(c.flow, c.session(tok, scopeStrings(scopes))), nil
}

// FromRefreshToken resumes a user session from a persisted refresh token with a single refresh exchange.
// scopes are forwarded to the token endpoint as a hint. Only the authorization code flows issue refresh tokens,
// so F is restricted to [Authorised] and a [ClientCreds] flow does not compile.
func FromRefreshToken[F Authorised](ctx context.Context, flow F, redirectURI string, autoRefresh bool, scopes []Scope, refreshToken string, opts ...Option) (*UserClient[F], error) {
	u := newUnauthenticated(flow, redirectURI, autoRefresh, opts)

	tok, err := u.oauth.exchangeRefresh(ctx, u.httpClient(), refreshToken, scopes)
	if err != nil {
		return nil, err
	}

	u.opts.logger.Debug("resumed from refresh token", "flow", fmt.Sprintf("%T", flow))
	return &UserClient[F]{newClient(flow, u.session(tok, scopeStrings(scopes)))}, nil
}

// Client is an authenticated client. It exposes every endpoint that does not act on behalf of a user.
//
// Requests made through one Client, including through the builders it returns, are serialised: each one holds
// the client for its whole pipeline, so they complete in the order they were issued.
type Client[F Flow] struct {
	flow F
	s    *session
}

func newClient[F Flow](flow F, s *session) *Client[F] {
	return &Client[F]{flow: flow, s: s}
}

// UserClient is an authenticated client of a flow the user consented to. It adds the user-centric endpoints
// (library, playback, follows, profile and playlist changes) to those of [Client].
type UserClient[F Authorised] struct {
	*Client[F]
}

// Flow returns the flow the client was authenticated with.
func (c *Client[F]) Flow() F {
	return c.flow
}

// AccessToken returns the current access token.
func (c *Client[F]) AccessToken() string {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.token.AccessToken
}

// RefreshToken returns the current refresh token, empty when none is held.
func (c *Client[F]) RefreshToken() string {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.token.RefreshToken
}

// Token returns a copy of the current token.
func (c *Client[F]) Token() Token {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	tok := *c.s.token
	tok.Scopes = append([]string(nil), c.s.token.Scopes...)
	return tok
}

// AutoRefresh reports whether an expired token is refreshed before the next request.
func (c *Client[F]) AutoRefresh() bool {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.autoRefresh
}

// SetAutoRefresh sets the auto-refresh policy.
func (c *Client[F]) SetAutoRefresh(enabled bool) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.autoRefresh = enabled
}

// RequestRefreshToken refreshes the access token now. It fails with [ErrRefreshUnavailable] when no refresh
// token is held. The current token is kept if the exchange fails.
func (c *Client[F]) RequestRefreshToken(ctx context.Context) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.refresh(ctx, nil)
}
