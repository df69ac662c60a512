package spotify

import (
	"fmt"
	"strings"
	"time"
)

const (
	accountsURL   = "https://accounts.spotify.com"
	authorizePath = "/authorize"
	tokenPath     = "/api/token"

	// defaultTokenLifetime is assumed when the token endpoint omits expires_in.
	defaultTokenLifetime = time.Hour
)

// Flow identifies one of the OAuth2 grants the client can be authenticated with.
//
// A flow is the type-level index of [Client]; it provides the client id, the optional client secret and the token URL.
type Flow interface {
	ClientID() string
	ClientSecret() string
	TokenURL() string
}

// Authorised is satisfied by the flows in which a user consents to access: [AuthCodeGrant] and [AuthCodeGrantPKCE].
//
// Only clients indexed by an Authorised flow can be turned into a [UserClient].
type Authorised interface {
	Flow
	authorised()
}

// AuthCodeGrant is the authorization code flow for confidential clients.
type AuthCodeGrant struct {
	clientID     string
	clientSecret string
}

// NewAuthCodeGrant returns the authorization code flow for the given application credentials.
func NewAuthCodeGrant(clientID, clientSecret string) AuthCodeGrant {
	return AuthCodeGrant{clientID: clientID, clientSecret: clientSecret}
}

// ClientID, ClientSecret and TokenURL implement [Flow].
func (f AuthCodeGrant) ClientID() string { return f.clientID }
func (f AuthCodeGrant) ClientSecret() string { return f.clientSecret }
func (f AuthCodeGrant) TokenURL() string { return accountsURL + tokenPath }
func (AuthCodeGrant) authorised() {}

// AuthCodeGrantPKCE is the authorization code flow with a PKCE challenge, for clients that cannot keep a secret.
type AuthCodeGrantPKCE struct {
	clientID string
}

// NewAuthCodeGrantPKCE returns the PKCE authorization code flow for the given client id.
func NewAuthCodeGrantPKCE(clientID string) AuthCodeGrantPKCE {
	return AuthCodeGrantPKCE{clientID: clientID}
}

// ClientID, ClientSecret and TokenURL implement [Flow]. The secret is empty; the PKCE verifier takes its place.
func (f AuthCodeGrantPKCE) ClientID() string { return f.clientID }
func (AuthCodeGrantPKCE) ClientSecret() string { return "" }
func (AuthCodeGrantPKCE) TokenURL() string { return accountsURL + tokenPath }
func (AuthCodeGrantPKCE) authorised() {}

// ClientCreds is the client credentials flow. It grants access to catalogue data only, never to user data.
type ClientCreds struct {
	clientID     string
	clientSecret string
}

// NewClientCreds returns the client credentials flow for the given application credentials.
func NewClientCreds(clientID, clientSecret string) ClientCreds {
	return ClientCreds{clientID: clientID, clientSecret: clientSecret}
}

// ClientID, ClientSecret and TokenURL implement [Flow].
func (f ClientCreds) ClientID() string { return f.clientID }
func (f ClientCreds) ClientSecret() string { return f.clientSecret }
func (ClientCreds) TokenURL() string { return accountsURL + tokenPath }

// Scope is a permission requested at authorization time.
type Scope string

const (
	ScopeUGCImageUpload            Scope = "ugc-image-upload"
	ScopeUserReadPlaybackState     Scope = "user-read-playback-state"
	ScopeUserModifyPlaybackState   Scope = "user-modify-playback-state"
	ScopeUserReadCurrentlyPlaying  Scope = "user-read-currently-playing"
	ScopeAppRemoteControl          Scope = "app-remote-control"
	ScopeStreaming                 Scope = "streaming"
	ScopePlaylistReadPrivate       Scope = "playlist-read-private"
	ScopePlaylistReadCollaborative Scope = "playlist-read-collaborative"
	ScopePlaylistModifyPrivate     Scope = "playlist-modify-private"
	ScopePlaylistModifyPublic      Scope = "playlist-modify-public"
	ScopeUserFollowModify          Scope = "user-follow-modify"
	ScopeUserFollowRead            Scope = "user-follow-read"
	ScopeUserReadPlaybackPosition  Scope = "user-read-playback-position"
	ScopeUserTopRead               Scope = "user-top-read"
	ScopeUserReadRecentlyPlayed    Scope = "user-read-recently-played"
	ScopeUserLibraryModify         Scope = "user-library-modify"
	ScopeUserLibraryRead           Scope = "user-library-read"
	ScopeUserReadEmail             Scope = "user-read-email"
	ScopeUserReadPrivate           Scope = "user-read-private"
	ScopeUserSOALink               Scope = "user-soa-link"
	ScopeUserSOAUnlink             Scope = "user-soa-unlink"
	ScopeSOAManageEntitlements     Scope = "soa-manage-entitlements"
	ScopeSOAManagePartner          Scope = "soa-manage-partner"
	ScopeSOACreatePartner          Scope = "soa-create-partner"
)

func scopeStrings(scopes []Scope) []string {
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, string(s))
	}
	return out
}

// Token is the credential set issued by the token endpoint.
//
// IssuedAt is never after ExpiresAt. A refresh replaces the access token and the expiry, and replaces the
// refresh token only when the token endpoint returns a new one.
type Token struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	Scopes       []string
}

// IsExpired reports whether the access token is no longer usable at now.
func (t *Token) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// String describes the token without its secrets.
func (t *Token) String() string {
	return fmt.Sprintf("Token{type=%s expires_at=%s scopes=%s refreshable=%t}",
		t.TokenType, t.ExpiresAt.Format(time.RFC3339), strings.Join(t.Scopes, " "), t.RefreshToken != "")
}

func (t *Token) GoString() string { return t.String() }

type authorisation struct {
	url    string
	state  string
	scopes []string
	spent  bool
}

// URL is the authorization URL the user must visit.
func (a *authorisation) URL() string { return a.url }

// State is the CSRF state embedded in the authorization URL, to be compared against the redirect.
func (a *authorisation) State() string { return a.state }

// spend checks the state received on the redirect and marks the handle used. A spent handle never matches.
func (a *authorisation) spend(received string) error {
	if a.spent || received != a.state {
		return ErrInvalidStateParameter
	}
	a.spent = true
	return nil
}

// Authorisation is the per-attempt handle of the authorization code flow, returned by
// [AuthCodeClient.Authorisation] and consumed by [AuthCodeClient.Authenticate].
type Authorisation struct {
	authorisation
}

// AuthorisationPKCE is the per-attempt handle of the PKCE flow. It additionally holds the PKCE verifier,
// which never leaves the handle except in the token exchange.
type AuthorisationPKCE struct {
	authorisation
	verifier string
}
