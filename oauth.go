package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// oauthClient drives the accounts service token endpoint for every flow.
type oauthClient struct {
	config *oauth2.Config
}

func newOAuthClient(flow Flow, redirectURI string, o *options) *oauthClient {
	authURL := accountsURL + authorizePath
	tokenURL := flow.TokenURL()
	if o.accountsURL != "" {
		authURL = o.accountsURL + authorizePath
		tokenURL = o.accountsURL + tokenPath
	}

	// PKCE clients have no secret to put in the Authorization header.
	style := oauth2.AuthStyleInHeader
	if flow.ClientSecret() == "" {
		style = oauth2.AuthStyleInParams
	}

	return &oauthClient{
		config: &oauth2.Config{
			ClientID:     flow.ClientID(),
			ClientSecret: flow.ClientSecret(),
			RedirectURL:  redirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: style,
			},
		},
	}
}

// authURL builds the authorization URL. A non-empty verifier adds its S256 challenge.
func (o *oauthClient) authURL(state string, scopes []Scope, verifier string) string {
	var opts []oauth2.AuthCodeOption
	if len(scopes) > 0 {
		opts = append(opts, oauth2.SetAuthURLParam("scope", strings.Join(scopeStrings(scopes), " ")))
	}
	if verifier != "" {
		opts = append(opts, oauth2.S256ChallengeOption(verifier))
	}
	return o.config.AuthCodeURL(state, opts...)
}

func (o *oauthClient) exchangeCode(ctx context.Context, hc *http.Client, code, verifier string) (*oauth2.Token, error) {
	var opts []oauth2.AuthCodeOption
	if verifier != "" {
		opts = append(opts, oauth2.VerifierOption(verifier))
	}

	tok, err := o.config.Exchange(withHTTPClient(ctx, hc), code, opts...)
	if err != nil {
		return nil, oauthError(err)
	}
	return tok, nil
}

func (o *oauthClient) exchangeClientCredentials(ctx context.Context, hc *http.Client, scopes []Scope) (*oauth2.Token, error) {
	cc := o.credentials(scopes, nil)
	tok, err := cc.Token(withHTTPClient(ctx, hc))
	if err != nil {
		return nil, oauthError(err)
	}
	return tok, nil
}

// exchangeRefresh trades a refresh token for a new access token. The prior refresh token is kept when
// the response carries none.
func (o *oauthClient) exchangeRefresh(ctx context.Context, hc *http.Client, refreshToken string, scopes []Scope) (*oauth2.Token, error) {
	// clientcredentials lets grant_type be overridden, which also gives the refresh grant a scope parameter.
	cc := o.credentials(scopes, url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	})
	tok, err := cc.Token(withHTTPClient(ctx, hc))
	if err != nil {
		return nil, oauthError(err)
	}
	if tok.RefreshToken == "" {
		tok.RefreshToken = refreshToken
	}
	return tok, nil
}

func (o *oauthClient) credentials(scopes []Scope, params url.Values) *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:       o.config.ClientID,
		ClientSecret:   o.config.ClientSecret,
		TokenURL:       o.config.Endpoint.TokenURL,
		Scopes:         scopeStrings(scopes),
		EndpointParams: params,
		AuthStyle:      o.config.Endpoint.AuthStyle,
	}
}

func withHTTPClient(ctx context.Context, hc *http.Client) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, hc)
}

func oauthError(err error) error {
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) {
		return &OAuthError{Code: rErr.ErrorCode, Description: rErr.ErrorDescription, Err: err}
	}
	return &OAuthError{Err: err}
}
