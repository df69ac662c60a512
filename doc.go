// Package spotify is a typed client for the Spotify Web API.
//
// # Flows
//
// A client is created for one of three OAuth2 flows: [AuthCodeGrant], [AuthCodeGrantPKCE] and [ClientCreds].
// The flow is part of the client's type. Endpoints that act on a user's account are methods of [UserClient],
// which only exists for the two authorization code flows, so calling them with an app token does not compile.
//
// # Authenticating
//
// The authorization code flows start from an unauthenticated client. [AuthCodeClient.Authorisation] returns a
// per-attempt handle holding the authorization URL and its CSRF state; the PKCE handle also holds the verifier.
// After the user is redirected back, pass the handle with the received code and state to Authenticate:
//
//	client := spotify.NewAuthCodeClient(spotify.NewAuthCodeGrant(id, secret), redirectURI, true)
//	auth := client.Authorisation(spotify.ScopeUserReadEmail)
//	// send the user to auth.URL(), then receive code and state on redirectURI
//	user, err := client.Authenticate(ctx, auth, code, state)
//
// The callback package serves the redirect URI for command line programs. A stored refresh token can be
// turned back into a client with [FromRefreshToken].
//
// # Tokens
//
// Every request carries the current access token. With auto refresh enabled, an expired token is refreshed
// before the request is sent; otherwise the request fails with [ErrExpiredToken]. Requests through one client
// and the builders it returns run one at a time, so a token is refreshed at most once.
//
// # Endpoints
//
// Endpoints without optional parameters are plain methods. The others return a builder with one setter per
// option and a terminal Get or Send. Options that are not set are never sent.
//
//	page, err := user.CurrentUserTopTracks().TimeRange(spotify.ShortTerm).Limit(10).Get(ctx)
//
// # Errors
//
// Failures match one of [ErrTransport], [ErrAPI], [ErrMalformedResponse], [ErrOAuth],
// [ErrInvalidStateParameter], [ErrExpiredToken] and [ErrRefreshUnavailable] with [errors.Is]. Error responses of
// the Web API are [APIError] values; see [AsAPIError].
//
// # Configuration
//
// [LoadConfig] reads credentials and client settings from a TOML file, and [Config] builds the unauthenticated
// clients from them.
package spotify
